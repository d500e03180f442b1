package handlers

import (
	"github.com/prisha-enterprises/backoffice/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	inquiryRepo  repo.InquiryRepository
	settingsRepo repo.SettingsRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetInquiryRepo(r repo.InquiryRepository) {
	inquiryRepo = r
}

func SetSettingsRepo(r repo.SettingsRepository) {
	settingsRepo = r
}
