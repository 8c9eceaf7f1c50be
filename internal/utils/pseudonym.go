package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

var pseudonymAdjectives = []string{
	"Silent", "Phantom", "Covert", "Stealth", "Shadow", "Cryptic",
	"Discrete", "Secure", "Vigilant", "Astute", "Diligent", "Resilient",
	"Careful", "Tactical", "Precise", "Methodical", "Thorough", "Keen",
}

var pseudonymNouns = []string{
	"Auditor", "Assessor", "Analyst", "Reviewer", "Inspector", "Examiner",
	"Investigator", "Validator", "Controller", "Advisor", "Specialist", "Practitioner",
}

// GeneratePseudonym builds a random handle like "SilentAuditor34". Used as the
// fallback whenever a profile is saved without a username.
func GeneratePseudonym() string {
	adj := pseudonymAdjectives[rand.Intn(len(pseudonymAdjectives))]
	noun := pseudonymNouns[rand.Intn(len(pseudonymNouns))]
	num := rand.Intn(900) + 10
	return fmt.Sprintf("%s%s%d", adj, noun, num)
}

// GetInitials derives a two-letter avatar label from a camel-cased handle:
// "SilentAuditor34" -> "SA". Falls back to the first two characters.
func GetInitials(username string) string {
	if username == "" {
		return "??"
	}
	var words []string
	start := 0
	for i, r := range username {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, username[start:i])
			start = i
		}
	}
	words = append(words, username[start:])
	if len(words) >= 2 && len(words[0]) > 0 && len(words[1]) > 0 {
		return strings.ToUpper(words[0][:1] + words[1][:1])
	}
	if len(username) >= 2 {
		return strings.ToUpper(username[:2])
	}
	return strings.ToUpper(username)
}

// AvatarGradients is the fixed palette profiles pick their gradient from.
var AvatarGradients = []string{
	"135deg, #00d4ff, #7b61ff",
	"135deg, #00e5a0, #0891b2",
	"135deg, #fbbf24, #f97316",
	"135deg, #ff4d6a, #7b61ff",
	"135deg, #a78bfa, #ec4899",
	"135deg, #f97316, #fbbf24",
	"135deg, #00d4ff, #00e5a0",
	"135deg, #ec4899, #f97316",
}

// Fixed vocabularies offered by the profile and ask/share forms.
var (
	Industries = []string{
		"Financial Services / Banking",
		"Healthcare / Life Sciences",
		"Technology / SaaS",
		"Government / Public Sector",
		"Consulting / Professional Services",
		"Retail / E-commerce",
		"Energy / Utilities",
		"Insurance",
		"Manufacturing",
		"Education",
		"Other",
	}

	Certifications = []string{
		"CISA", "CISM", "CISSP", "CCSP", "CIA",
		"QSA", "CRISC", "CDPSE", "CEH", "OSCP", "CPA",
	}

	ExperienceRanges = []string{
		"0–2 years", "3–5 years", "6–10 years", "11–15 years", "15+ years",
	}

	Tags = []string{
		"SOC 2", "ISO 27001", "NIST", "PCIDSS", "SOX", "CMMC",
		"GDPR", "HIPAA", "zero-trust", "cloud", "IAM", "SIEM",
		"logging", "evidence", "risk", "access-control", "penetration",
	}
)
