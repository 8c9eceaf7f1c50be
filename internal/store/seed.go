package store

import (
	"log"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/utils"
)

// Seed loads the static fixture data the session boots from. Idempotent:
// a store that already has questions is left alone.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.questions) > 0 {
		log.Println("Store already seeded, skipping")
		return
	}

	now := time.Now()
	ago := func(hours float64) time.Time {
		return now.Add(-time.Duration(hours * float64(time.Hour)))
	}

	p1 := models.Profile{
		ID: "p1", Username: "SilentAuditor34", JobTitle: "Senior IT Auditor",
		Industry: "Financial Services / Banking", Experience: "6–10 years",
		Certifications: []string{"CISA"}, AvatarGradient: utils.AvatarGradients[0],
		IsAnonymous: true, Reputation: 3420, CreatedAt: ago(24 * 60),
	}
	p2 := models.Profile{
		ID: "p2", Username: "PhantomReviewer19", JobTitle: "GRC Analyst",
		Industry: "Technology / SaaS", Experience: "3–5 years",
		Certifications: []string{"CISM"}, AvatarGradient: utils.AvatarGradients[1],
		IsAnonymous: true, Reputation: 2310, CreatedAt: ago(24 * 55),
	}
	p3 := models.Profile{
		ID: "p3", Username: "CovertAssessor11", JobTitle: "QSA",
		Industry: "Retail / E-commerce", Experience: "6–10 years",
		Certifications: []string{"QSA", "CISSP"}, AvatarGradient: utils.AvatarGradients[5],
		IsAnonymous: true, Reputation: 2100, CreatedAt: ago(24 * 48),
	}
	p4 := models.Profile{
		ID: "p4", Username: "MethodicalInspector7", JobTitle: "IT Audit Manager",
		Industry: "Government / Public Sector", Experience: "11–15 years",
		Certifications: []string{"CISM", "CRISC"}, AvatarGradient: utils.AvatarGradients[4],
		IsAnonymous: true, Reputation: 1890, CreatedAt: ago(24 * 40),
	}
	for _, p := range []models.Profile{p1, p2, p3, p4} {
		s.profiles[p.ID] = p
	}
	snap := func(p models.Profile) *models.Profile { return &p }

	s.questions = []models.Question{
		{
			ID:    "q1",
			Title: "SOC 2 access reviews: are machine-readable IGA exports acceptable evidence?",
			Body: "Our IGA tool runs quarterly access reviews automatically and exports the results " +
				"as JSON. The auditors keep asking for signed spreadsheets. Does CC6.2 actually " +
				"require a particular evidence format, or is this just auditor habit?",
			AuthorID: p1.ID, Author: snap(p1),
			Tags:      []string{"SOC 2", "IAM", "evidence"},
			VoteCount: 24, AnswerCount: 2, ViewCount: 412, IsAnswered: true,
			CreatedAt: ago(3), UpdatedAt: ago(3),
		},
		{
			ID:    "q2",
			Title: "PCI DSS v4.0: how do you scope segmentation testing for a flat-ish network?",
			Body: "Client has VLAN separation but shared management plane. Trying to work out " +
				"whether segmentation testing has to cover every VLAN pair or just the CDE boundary.",
			AuthorID: p3.ID, Author: snap(p3),
			Tags:      []string{"PCIDSS", "penetration"},
			VoteCount: 8, AnswerCount: 0, ViewCount: 120,
			CreatedAt: ago(7), UpdatedAt: ago(7),
		},
		{
			ID:    "q3",
			Title: "How granular should an ISO 27001 Statement of Applicability be?",
			Body: "One row per Annex A control, or do you break controls into sub-statements when " +
				"applicability differs by business unit?",
			AuthorID: p2.ID, Author: snap(p2),
			Tags:      []string{"ISO 27001", "risk"},
			VoteCount: 12, AnswerCount: 0, ViewCount: 255,
			CreatedAt: ago(12), UpdatedAt: ago(12),
		},
		{
			ID:    "q4",
			Title: "SIEM log retention: what does ISO 27001 A.12.4.1 'as required' actually mean?",
			Body: "Leadership wants a number. Every framework seems to hand-wave retention. " +
				"What do you actually recommend for hot/warm/cold tiers in an enterprise SIEM?",
			AuthorID: p2.ID, Author: snap(p2),
			Tags:      []string{"ISO 27001", "SIEM", "logging"},
			VoteCount: 31, AnswerCount: 1, ViewCount: 530, IsAnswered: true,
			CreatedAt: ago(22), UpdatedAt: ago(22),
		},
		{
			ID:    "q5",
			Title: "NIST CSF vs 800-53 for a 40-person startup — where do you start?",
			Body: "First security hire at a seed-stage SaaS. Customers ask about NIST. CSF feels " +
				"right-sized but sales keeps hearing '800-53' in questionnaires.",
			AuthorID: p4.ID, Author: snap(p4),
			Tags:      []string{"NIST", "cloud"},
			VoteCount: 5, AnswerCount: 0, ViewCount: 88,
			CreatedAt: ago(30), UpdatedAt: ago(30),
		},
		{
			ID:    "q6",
			Title: "Auditee IT team refuses to provide evidence — what's the professional escalation path?",
			Body: "Three weeks of 'we'll get back to you' on basic change-management evidence. " +
				"Engagement letter exists. How far do you push before qualifying the opinion?",
			AuthorID: p4.ID, Author: snap(p4),
			Tags:      []string{"evidence", "risk"},
			VoteCount: 45, AnswerCount: 1, ViewCount: 890, IsAnswered: true,
			CreatedAt: ago(70), UpdatedAt: ago(70),
		},
		{
			ID:    "q7",
			Title: "Is logging rejected MFA pushes enough for A.9.4, or do we need alerting on MFA fatigue?",
			Body: "We log every rejected push but nobody looks at them. An assessor hinted this is " +
				"a gap. Which clause does MFA-fatigue detection actually live under?",
			AuthorID: p1.ID, Author: snap(p1),
			Tags:      []string{"ISO 27001", "IAM", "access-control"},
			VoteCount: 38, AnswerCount: 1, ViewCount: 610, IsAnswered: true,
			CreatedAt: ago(92), UpdatedAt: ago(92),
		},
		{
			ID:    "q8",
			Title: "SOX ITGC: what counts as sufficient evidence for emergency changes?",
			Body: "External auditors pushed back on our emergency-change log because approvals are " +
				"retroactive by design. How do you evidence a compensating review?",
			AuthorID: p3.ID, Author: snap(p3),
			Tags:      []string{"SOX", "evidence"},
			VoteCount: 9, AnswerCount: 0, ViewCount: 140,
			CreatedAt: ago(100), UpdatedAt: ago(100),
		},
		{
			ID:    "q9",
			Title: "Evidencing zero-trust maturity for CMMC Level 2 — anyone been through it?",
			Body: "Assessor wants architecture evidence, not policy. What artifacts actually " +
				"satisfied AC practices for you?",
			AuthorID: p1.ID, Author: snap(p1),
			Tags:      []string{"CMMC", "zero-trust", "access-control"},
			VoteCount: 16, AnswerCount: 0, ViewCount: 95,
			CreatedAt: ago(110), UpdatedAt: ago(110),
		},
		{
			ID:    "q10",
			Title: "Cloud Run and SOC 2: who owns OS-level controls in a fully managed PaaS?",
			Body: "Everything below the container image is Google's. How do you evidence CC7.1 and " +
				"CC6.8 when you can't even see the host OS?",
			AuthorID: p2.ID, Author: snap(p2),
			Tags:      []string{"SOC 2", "cloud"},
			VoteCount: 19, AnswerCount: 1, ViewCount: 340, IsAnswered: true,
			CreatedAt: ago(32), UpdatedAt: ago(32),
		},
	}

	s.answers = []models.Answer{
		{
			ID: "a1", QuestionID: "q1",
			Body: "CC6.2 doesn't prescribe an evidence format — only that reviews occur and are " +
				"documented. Machine-readable JSON qualifies if you can show the review happened, " +
				"changes followed from it, and someone with authority signed off. Practically: " +
				"generate a human-readable summary from the JSON and attach both as the evidence package.",
			AuthorID: p2.ID, Author: snap(p2),
			VoteCount: 28, IsAccepted: true,
			CreatedAt: ago(1.5), UpdatedAt: ago(1.5),
		},
		{
			ID: "a2", QuestionID: "q1",
			Body: "We went through this with a Big 4 auditor. A one-page signed attestation from the " +
				"IAM lead ('I reviewed the attached access report for the period, exceptions " +
				"remediated per the change log') plus the automated logs sailed through.",
			AuthorID: p3.ID, Author: snap(p3),
			VoteCount: 14,
			CreatedAt: ago(1), UpdatedAt: ago(1),
		},
		{
			ID: "a3", QuestionID: "q4",
			Body: "'As required' is deliberately vague. Work in tiers: your longest applicable legal " +
				"requirement sets the floor; 90 days hot covers most incident investigations; move " +
				"to cold storage after that. 90 days hot, 12 months warm, 7 years cold satisfies " +
				"auditors across frameworks for most enterprises.",
			AuthorID: p4.ID, Author: snap(p4),
			VoteCount: 31, IsAccepted: true,
			CreatedAt: ago(20), UpdatedAt: ago(20),
		},
		{
			ID: "a4", QuestionID: "q6",
			Body: "This is a scope and contractual issue. Document every request and refusal, " +
				"escalate above the IT team to whoever signed the engagement letter, invoke the " +
				"access clause explicitly, and if evidence is still refused issue a qualified " +
				"opinion noting that it was requested and refused. Don't issue clean without evidence.",
			AuthorID: p1.ID, Author: snap(p1),
			VoteCount: 45, IsAccepted: true,
			CreatedAt: ago(68), UpdatedAt: ago(68),
		},
		{
			ID: "a5", QuestionID: "q7",
			Body: "A.9.4 covers prevention; detection of MFA fatigue belongs under A.12.4 and A.16.1. " +
				"You need threshold alerting and an automated response on top of the logging. " +
				"Document the current state as a finding with a remediation timeline — a weekly " +
				"manual review works as a compensating control meanwhile.",
			AuthorID: p2.ID, Author: snap(p2),
			VoteCount: 38, IsAccepted: true,
			CreatedAt: ago(90), UpdatedAt: ago(90),
		},
		{
			ID: "a6", QuestionID: "q10",
			Body: "GCP's own SOC 2 report is your evidence for everything below the image — pull it " +
				"from the Compliance Reports Manager each quarter and show you reviewed it. Your " +
				"side is the container: base-image scanning in CI, no critical CVEs deployed, an " +
				"image update policy. Annotate the shared responsibility matrix in your workpapers.",
			AuthorID: p3.ID, Author: snap(p3),
			VoteCount: 19, IsAccepted: true,
			CreatedAt: ago(30), UpdatedAt: ago(30),
		},
	}

	s.templates = []models.Template{
		{
			ID: "t1", Title: "Evidence Request List (PBC)",
			Description: "Prepared-by-client request tracker covering ITGC, access and change domains, with status and owner columns.",
			Category:    "Evidence", FileName: "pbc-request-list.xlsx", FileFormat: "xlsx",
			AuthorID: p1.ID, Author: snap(p1),
			DownloadCount: 1530, RatingAvg: 4.9, RatingCount: 72,
			Tags:      []string{"evidence", "SOX"},
			CreatedAt: ago(24 * 30),
		},
		{
			ID: "t2", Title: "Access Review Workpaper",
			Description: "Quarterly access review workpaper with reviewer sign-off, exception log and remediation tracking.",
			Category:    "Evidence", FileName: "access-review-workpaper.xlsx", FileFormat: "xlsx",
			AuthorID: p2.ID, Author: snap(p2),
			DownloadCount: 1240, RatingAvg: 4.8, RatingCount: 56,
			Tags:      []string{"IAM", "SOC 2", "evidence"},
			CreatedAt: ago(24 * 26),
		},
		{
			ID: "t3", Title: "ISO 27001 Internal Audit Checklist",
			Description: "Clause-by-clause internal audit checklist for ISO 27001:2022, Annex A included.",
			Category:    "Checklists", FileName: "iso27001-internal-audit.docx", FileFormat: "docx",
			AuthorID: p4.ID, Author: snap(p4),
			DownloadCount: 980, RatingAvg: 4.6, RatingCount: 41,
			Tags:      []string{"ISO 27001"},
			CreatedAt: ago(24 * 22),
		},
		{
			ID: "t4", Title: "Vendor Risk Assessment Matrix",
			Description: "Tiered third-party risk scoring matrix with inherent/residual scoring and treatment tracking.",
			Category:    "Risk Assessment", FileName: "vendor-risk-matrix.xlsx", FileFormat: "xlsx",
			AuthorID: p3.ID, Author: snap(p3),
			DownloadCount: 860, RatingAvg: 4.7, RatingCount: 38,
			Tags:      []string{"risk"},
			CreatedAt: ago(24 * 18),
		},
		{
			ID: "t5", Title: "SOC 2 Readiness Assessment Report",
			Description: "Readiness report shell with per-criterion gap summaries and remediation roadmap sections.",
			Category:    "Reports", FileName: "soc2-readiness-report.docx", FileFormat: "docx",
			AuthorID: p2.ID, Author: snap(p2),
			DownloadCount: 610, RatingAvg: 4.4, RatingCount: 22,
			Tags:      []string{"SOC 2"},
			CreatedAt: ago(24 * 12),
		},
		{
			ID: "t6", Title: "Security Policy Starter Pack",
			Description: "Acceptable use, access control and incident response policy skeletons, framework-mapped.",
			Category:    "Policies", FileName: "policy-starter-pack.zip", FileFormat: "zip",
			AuthorID: p1.ID, Author: snap(p1),
			DownloadCount: 430, RatingAvg: 4.2, RatingCount: 18,
			Tags:      []string{"access-control", "logging"},
			CreatedAt: ago(24 * 8),
		},
	}

	log.Printf("Seeded %d questions, %d answers, %d templates", len(s.questions), len(s.answers), len(s.templates))
}
