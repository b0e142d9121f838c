package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFormTitle names both the form provisioned at registration and the
// one synthesized by the settings-to-forms migration.
const DefaultFormTitle = "Página Principal"

// FormConfig is one public capture form: content, styling and delivery
// settings. A user owns an ordered sequence of these; insertion order is
// display order.
type FormConfig struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Headline        string    `json:"headline"`
	Subheadline     string    `json:"subheadline"`
	CTAText         string    `json:"ctaText"`
	LogoURL         string    `json:"logoUrl"`
	HeroImageURL    string    `json:"heroImageUrl"`
	PrimaryColor    string    `json:"primaryColor"`
	BackgroundColor string    `json:"backgroundColor"`
	TextColor       string    `json:"textColor"`
	RedirectURL     string    `json:"redirectUrl"`
	FileName        string    `json:"fileName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewForm builds a form from the default content/style template with a
// fresh id and timestamp.
func NewForm(title string) FormConfig {
	return FormConfig{
		ID:              uuid.NewString(),
		Title:           title,
		Headline:        "Receba nosso material exclusivo",
		Subheadline:     "Preencha seus dados abaixo e receba o conteúdo no seu WhatsApp",
		CTAText:         "Quero receber",
		PrimaryColor:    "#2563EB",
		BackgroundColor: "#F8FAFC",
		TextColor:       "#0F172A",
		CreatedAt:       time.Now(),
	}
}

// FormFromSettings builds a form carrying over a legacy single-settings
// record, used when migrating pre-multi-form data.
func FormFromSettings(title string, s AppSettings) FormConfig {
	return FormConfig{
		ID:              uuid.NewString(),
		Title:           title,
		Headline:        s.Headline,
		Subheadline:     s.Subheadline,
		CTAText:         s.CTAText,
		LogoURL:         s.LogoURL,
		HeroImageURL:    s.HeroImageURL,
		PrimaryColor:    s.PrimaryColor,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		RedirectURL:     s.RedirectURL,
		FileName:        s.FileName,
		CreatedAt:       time.Now(),
	}
}
