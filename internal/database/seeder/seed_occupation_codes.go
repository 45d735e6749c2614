package seeder

import (
	"context"
	"fmt"

	"hireall/internal/database"
	"hireall/internal/soc"
)

// OccupationCodesSeeder loads the baseline SOC 2020 taxonomy slice the
// classifier matches against. ON CONFLICT keeps re-runs idempotent while
// still refreshing titles and notes.
type OccupationCodesSeeder struct{}

func (OccupationCodesSeeder) Name() string { return "occupation_codes" }

const sponsorshipEligible = "Eligible for Skilled Worker visa sponsorship"

var baselineTaxonomy = []soc.OccupationCode{
	{
		Code:            "2133",
		Title:           "IT business analysts, architects and systems designers",
		RelatedTitles:   []string{"business analyst", "solutions architect", "systems designer", "enterprise architect"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2134",
		Title:           "Programmers and software development professionals",
		RelatedTitles:   []string{"software engineer", "software developer", "backend engineer", "frontend engineer", "full stack engineer", "games developer"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2135",
		Title:           "Cyber security professionals",
		RelatedTitles:   []string{"security engineer", "security analyst", "penetration tester"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2136",
		Title:           "IT quality and testing professionals",
		RelatedTitles:   []string{"qa engineer", "test engineer", "quality assurance analyst"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2137",
		Title:           "IT network professionals",
		RelatedTitles:   []string{"network engineer", "devops engineer", "infrastructure engineer", "site reliability engineer"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2425",
		Title:           "Actuaries, economists and statisticians",
		RelatedTitles:   []string{"actuary", "economist", "statistician", "data scientist"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "3544",
		Title:           "Data analysts",
		RelatedTitles:   []string{"data analyst", "business intelligence analyst", "reporting analyst"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "2431",
		Title:           "Architects",
		RelatedTitles:   []string{"architect", "architectural designer"},
		EligibilityNote: sponsorshipEligible,
	},
	{
		Code:            "3554",
		Title:           "Advertising and marketing associate professionals",
		RelatedTitles:   []string{"marketing executive", "marketing coordinator", "seo specialist"},
		EligibilityNote: "Not eligible below RQF level 3",
	},
	{
		Code:            "4122",
		Title:           "Book-keepers, payroll managers and wages clerks",
		RelatedTitles:   []string{"payroll administrator", "bookkeeper", "wages clerk"},
		EligibilityNote: "Not eligible for Skilled Worker sponsorship",
	},
}

func (OccupationCodesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "occupation_codes", "code", "title", "related_titles", "eligibility_note"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, entry := range baselineTaxonomy {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO occupation_codes (code, title, related_titles, eligibility_note)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (code) DO UPDATE SET
				title = EXCLUDED.title,
				related_titles = EXCLUDED.related_titles,
				eligibility_note = EXCLUDED.eligibility_note`,
			entry.Code,
			entry.Title,
			entry.RelatedTitles,
			entry.EligibilityNote,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
