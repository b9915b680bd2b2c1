package database

import (
	"encoding/json"
	"fmt"

	"github.com/pradiptha/cfaprep-be/internal/entity"
	"gorm.io/gorm"
)

type topicSeed struct {
	Name        string
	Description string
	ExamWeight  int
	Chapters    []string
}

// CurriculumData - the CFA Level I topic areas with approximate exam
// weights and their first readings.
var CurriculumData = []topicSeed{
	{
		Name:        "Ethical and Professional Standards",
		Description: "Code of Ethics, Standards of Professional Conduct, and GIPS.",
		ExamWeight:  17,
		Chapters:    []string{"Code of Ethics and Standards of Professional Conduct", "Guidance for Standards I-VII", "Introduction to GIPS"},
	},
	{
		Name:        "Quantitative Methods",
		Description: "Time value of money, probability, and statistical foundations.",
		ExamWeight:  9,
		Chapters:    []string{"Rates and Returns", "Probability Concepts", "Hypothesis Testing"},
	},
	{
		Name:        "Economics",
		Description: "Micro and macroeconomic analysis, and currency exchange rates.",
		ExamWeight:  9,
		Chapters:    []string{"Firms and Market Structures", "Business Cycles", "Currency Exchange Rates"},
	},
	{
		Name:        "Financial Statement Analysis",
		Description: "Reading and interpreting financial reports.",
		ExamWeight:  12,
		Chapters:    []string{"Income Statements", "Balance Sheets", "Cash Flow Statements", "Financial Analysis Techniques"},
	},
	{
		Name:        "Corporate Issuers",
		Description: "Corporate governance, capital structure, and working capital.",
		ExamWeight:  8,
		Chapters:    []string{"Organizational Forms and Ownership", "Capital Structure", "Working Capital and Liquidity"},
	},
	{
		Name:        "Equity Investments",
		Description: "Equity markets, indexes, and company valuation.",
		ExamWeight:  11,
		Chapters:    []string{"Market Organization and Structure", "Security Market Indexes", "Equity Valuation Concepts"},
	},
	{
		Name:        "Fixed Income",
		Description: "Bond features, pricing, and credit analysis.",
		ExamWeight:  11,
		Chapters:    []string{"Fixed-Income Instrument Features", "Bond Valuation", "Understanding Credit Risk"},
	},
	{
		Name:        "Derivatives",
		Description: "Forwards, futures, options, and swaps.",
		ExamWeight:  6,
		Chapters:    []string{"Derivative Instrument Features", "Pricing and Valuation of Forwards", "Option Replication"},
	},
	{
		Name:        "Alternative Investments",
		Description: "Private capital, real estate, infrastructure, and hedge funds.",
		ExamWeight:  7,
		Chapters:    []string{"Features of Alternative Investments", "Private Capital and Real Estate", "Hedge Funds and Digital Assets"},
	},
	{
		Name:        "Portfolio Management",
		Description: "Portfolio risk and return, and the investment policy statement.",
		ExamWeight:  10,
		Chapters:    []string{"Portfolio Risk and Return", "Basics of Portfolio Planning", "The Behavioral Biases of Individuals"},
	},
}

type questionSeed struct {
	Topic       string
	Chapter     string
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
	Difficulty  string
}

// StarterQuestions - a small bank so a fresh install has something to
// practice against before an admin loads real content.
var StarterQuestions = []questionSeed{
	{
		Topic:       "Quantitative Methods",
		Chapter:     "Rates and Returns",
		Prompt:      "An investment of $10,000 grows to $12,100 over two years with annual compounding. The annual rate of return is closest to:",
		Options:     []string{"10.0%", "10.5%", "21.0%"},
		Correct:     0,
		Explanation: "(12,100 / 10,000)^(1/2) - 1 = 0.10, or 10%.",
		Difficulty:  "easy",
	},
	{
		Topic:       "Quantitative Methods",
		Chapter:     "Probability Concepts",
		Prompt:      "Two events A and B are independent. P(A) = 0.4 and P(B) = 0.5. P(A and B) is closest to:",
		Options:     []string{"0.10", "0.20", "0.90"},
		Correct:     1,
		Explanation: "For independent events, P(A and B) = P(A) x P(B) = 0.4 x 0.5 = 0.20.",
		Difficulty:  "easy",
	},
	{
		Topic:       "Ethical and Professional Standards",
		Chapter:     "Code of Ethics and Standards of Professional Conduct",
		Prompt:      "A member who receives material nonpublic information about a security should most appropriately:",
		Options:     []string{"Trade only for client accounts", "Not act or cause others to act on the information", "Disclose the information to their supervisor before trading"},
		Correct:     1,
		Explanation: "Standard II(A) prohibits acting or causing others to act on material nonpublic information.",
		Difficulty:  "medium",
	},
	{
		Topic:       "Fixed Income",
		Chapter:     "Bond Valuation",
		Prompt:      "Holding all else constant, when market yields rise, the price of a fixed-rate bond:",
		Options:     []string{"Rises", "Falls", "Is unchanged"},
		Correct:     1,
		Explanation: "Bond prices and yields are inversely related.",
		Difficulty:  "easy",
	},
	{
		Topic:       "Equity Investments",
		Chapter:     "Equity Valuation Concepts",
		Prompt:      "A stock pays a constant dividend of $2.00 and the required return is 8%. Using the no-growth model, its value is closest to:",
		Options:     []string{"$16.00", "$25.00", "$40.00"},
		Correct:     1,
		Explanation: "V = D / r = 2.00 / 0.08 = $25.00.",
		Difficulty:  "medium",
	},
	{
		Topic:       "Portfolio Management",
		Chapter:     "Portfolio Risk and Return",
		Prompt:      "Combining two assets with a correlation of less than +1 most likely results in portfolio risk that is:",
		Options:     []string{"Equal to the weighted average of the assets' risks", "Less than the weighted average of the assets' risks", "Greater than the weighted average of the assets' risks"},
		Correct:     1,
		Explanation: "Diversification reduces portfolio standard deviation below the weighted average whenever correlation is below +1.",
		Difficulty:  "medium",
	},
}

// SeedCurriculum loads the topic catalog, starter chapters, and sample
// questions into an empty database.
func SeedCurriculum(db *gorm.DB) error {
	var count int64
	db.Model(&entity.Topic{}).Count(&count)
	if count > 0 {
		fmt.Println("Curriculum already seeded, skipping...")
		return nil
	}

	fmt.Println("Seeding CFA Level I curriculum...")

	topicIDs := make(map[string]uint, len(CurriculumData))
	chapterIDs := make(map[string]uint)

	for _, seed := range CurriculumData {
		topic := entity.Topic{
			Name:        seed.Name,
			Description: seed.Description,
			ExamWeight:  seed.ExamWeight,
		}
		if err := db.Create(&topic).Error; err != nil {
			return fmt.Errorf("failed to seed topic %q: %w", seed.Name, err)
		}
		topicIDs[seed.Name] = topic.ID

		for i, title := range seed.Chapters {
			chapter := entity.Chapter{
				TopicID: topic.ID,
				Title:   title,
				Ordinal: i + 1,
			}
			if err := db.Create(&chapter).Error; err != nil {
				return fmt.Errorf("failed to seed chapter %q: %w", title, err)
			}
			chapterIDs[seed.Name+"/"+title] = chapter.ID
		}
	}

	for _, seed := range StarterQuestions {
		optionsJSON, err := json.Marshal(seed.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options: %w", err)
		}

		question := entity.Question{
			TopicID:       topicIDs[seed.Topic],
			ChapterID:     chapterIDs[seed.Topic+"/"+seed.Chapter],
			Prompt:        seed.Prompt,
			Options:       string(optionsJSON),
			CorrectChoice: seed.Correct,
			Explanation:   seed.Explanation,
			Difficulty:    seed.Difficulty,
		}
		if err := db.Create(&question).Error; err != nil {
			return fmt.Errorf("failed to seed question: %w", err)
		}
	}

	fmt.Printf("Seeded %d topics and %d starter questions\n", len(CurriculumData), len(StarterQuestions))
	return nil
}
