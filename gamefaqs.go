// Package gamefaqs provides a scraping adapter for the GameFAQs website
// (https://gamefaqs.gamespot.com/) for use by a ROM-cataloguing host.
// The site exposes no API, so game metadata and artwork references are
// recovered by parsing HTML fragments that vary subtly across pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/); the
// scrape/ package wires them into the host-facing pipeline.
package gamefaqs
