package model

// AppSettings is the legacy pre-multi-form record: one settings blob per
// user instead of a form collection. Current code only ever reads it, to
// seed the first form during migration.
type AppSettings struct {
	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	CTAText         string `json:"ctaText"`
	LogoURL         string `json:"logoUrl"`
	HeroImageURL    string `json:"heroImageUrl"`
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	RedirectURL     string `json:"redirectUrl"`
	FileName        string `json:"fileName"`
}
