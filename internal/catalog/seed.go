package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type levelSeed struct {
	Code   string
	Title  string
	Topics []string
	Gram   []string
}

// Seed inserts the level/topic/grammar catalogs. Inserts are keyed on unique
// slugs and skipped when present, so it is safe to run on every startup.
func Seed(db *gorm.DB) error {
	for _, ls := range seedData {
		level := Level{Code: ls.Code, Title: ls.Title}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&level).Error; err != nil {
			return fmt.Errorf("seed level %s: %w", ls.Code, err)
		}
		if err := db.Where("code = ?", ls.Code).First(&level).Error; err != nil {
			return fmt.Errorf("seed level %s: %w", ls.Code, err)
		}

		for i, title := range ls.Topics {
			t := Topic{
				LevelID:  level.ID,
				Slug:     seedSlug(ls.Code, title),
				Title:    title,
				Position: uint(i + 1),
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&t).Error; err != nil {
				return fmt.Errorf("seed topic %s: %w", t.Slug, err)
			}
		}

		for i, title := range ls.Gram {
			g := GrammarTopic{
				LevelID:  level.ID,
				Slug:     seedSlug(ls.Code, title),
				Title:    title,
				Position: uint(i + 1),
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&g).Error; err != nil {
				return fmt.Errorf("seed grammar topic %s: %w", g.Slug, err)
			}
		}
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func seedSlug(levelCode, title string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(title, "-"), "-")
	return strings.ToLower(levelCode) + "-" + strings.ToLower(s)
}

var seedData = []levelSeed{
	{
		Code: "A1", Title: "Beginner",
		Topics: []string{
			"Introductions", "Alphabet and Spelling", "Numbers Time and Dates",
			"Family and Friends", "Home and Rooms", "Daily Routine",
			"School Essentials", "Basic Jobs", "Food and Drinks",
			"Shopping Basics", "Clothes and Colors", "Weather and Seasons",
			"City Directions", "Transport Basics", "Hobbies and Free Time",
			"Health Basics", "Phone and Technology Basics", "Holidays and Birthdays",
		},
		Gram: []string{
			"To be", "Subject Pronouns", "Possessive Adjectives",
			"Articles a/an/the", "Singular and Plural Nouns", "This That These Those",
			"Present Simple", "Present Simple Questions", "Present Simple Negatives",
			"Frequency Adverbs", "There is and There are", "Some and Any",
			"Can and Can not", "Imperatives", "Basic Prepositions of Place",
			"Object Pronouns", "Possessive s", "Basic Question Words",
		},
	},
	{
		Code: "A2", Title: "Elementary",
		Topics: []string{
			"Travel Plans", "Airport and Hotel", "Health and Appointments",
			"Work Day", "Housing and Services", "Past Weekend Stories",
			"Restaurant and Complaints", "Public Services", "Education and Courses",
			"Social Media Habits", "Money and Banking", "Shopping Decisions",
			"Daily Problems and Solutions", "Festivals and Traditions", "Fitness and Lifestyle",
			"Movies and Entertainment", "Future Plans", "Neighbor and Community",
			"Emergency Situations", "Simple Opinions and Preferences",
		},
		Gram: []string{
			"Past Simple Regular and Irregular", "Past Simple Questions and Negatives", "Was and Were",
			"Going to Future", "Will Future", "Present Continuous",
			"Present Continuous for Future", "Comparatives", "Superlatives",
			"Countable and Uncountable Nouns", "Much Many A lot of", "Few and Little",
			"Too and Enough", "Have to and Must", "Should and Should not",
			"Could for Requests", "Basic Relative Clauses", "Time Clauses",
		},
	},
	{
		Code: "B1", Title: "Intermediate",
		Topics: []string{
			"Career Goals", "Job Interviews", "Workplace Communication",
			"Relationships", "Media Habits", "Problem Solving",
			"Culture and Lifestyle", "Travel Incidents", "Learning Strategies",
			"Stress and Wellbeing", "Consumer Decisions", "Technology in Daily Life",
			"Environment in My City", "Friendship and Conflict", "Personal Finance",
			"News and Current Events", "Personal Growth", "Decision Making",
			"Plans and Priorities", "Giving Advice and Support",
		},
		Gram: []string{
			"Present Perfect", "Present Perfect vs Past Simple", "Present Perfect with For and Since",
			"Past Continuous", "Past Continuous vs Past Simple", "First Conditional",
			"Second Conditional", "Modal Verbs of Advice and Obligation", "Modal Verbs of Possibility",
			"Gerund and Infinitive", "Reported Speech Basics", "Question Tags",
			"Defining Relative Clauses", "Linking Words for Reason and Contrast", "Used to",
			"So and Such", "Reflexive Pronouns", "Basic Passive Voice",
		},
	},
	{
		Code: "B2", Title: "Upper Intermediate",
		Topics: []string{
			"Business Talks", "Negotiation Skills", "Technology and Society",
			"Environment Debate", "Education Systems", "Leadership in Teams",
			"Project Management", "Conflict Resolution", "Remote Work and Productivity",
			"Marketing and Branding", "Ethical Dilemmas", "Career Development",
			"Public Policy Discussion", "Digital Privacy", "Media Influence",
			"Innovation Cases", "Data and Evidence", "Cross Cultural Collaboration",
			"Persuasion Techniques", "Argument and Counterargument",
		},
		Gram: []string{
			"Past Perfect", "Present Perfect Continuous", "Past Perfect Continuous",
			"Future Perfect", "Future Continuous", "Passive Voice in Multiple Tenses",
			"Reported Speech Advanced", "Third Conditional", "Mixed Conditionals",
			"Modal Verbs for Deduction", "Past Modals", "Wish and If only",
			"Causative Have and Get", "Non Defining Relative Clauses", "Participle Clauses",
			"Complex Linking Devices", "Inversion for Emphasis", "Hedging Expressions",
		},
	},
	{
		Code: "C1", Title: "Advanced",
		Topics: []string{
			"Leadership", "Ethics and Decisions", "Innovation",
			"Intercultural Communication", "Public Speaking", "Strategic Thinking",
			"Organizational Change", "Risk and Uncertainty", "Economics and Markets",
			"Globalization", "Policy Analysis", "Research Communication",
			"Media Narratives", "Philosophy in Practice", "Law and Society",
			"Science and Responsibility", "Advanced Negotiation", "High Stakes Meetings",
			"Narrative Framing", "Mentoring and Coaching",
		},
		Gram: []string{
			"Advanced Clause Structures", "Inversion with Negative Adverbials", "Cleft and Pseudo Cleft Sentences",
			"Nominalization", "Advanced Hedging Language", "Discourse Markers for Argumentation",
			"Modal Nuance", "Advanced Conditionals", "Subjunctive Patterns",
			"Ellipsis and Substitution", "Fronting and Emphasis", "Advanced Passive Constructions",
			"Precision with Articles and Determiners", "Complex Relative Clauses", "Formal Register Grammar",
			"Stance and Evaluation Language", "Advanced Reporting Verbs", "Parallel Structures",
		},
	},
	{
		Code: "C2", Title: "Proficient",
		Topics: []string{
			"Policy and Society", "Advanced Debate", "Expert Domains",
			"Rhetoric and Persuasion", "Nuance and Tone", "Geopolitics",
			"Macroeconomic Narratives", "Epistemology and Truth", "Ethics of Technology",
			"Judicial Reasoning", "Crisis Communication", "Academic Defense",
			"Executive Communication", "Media Manipulation", "Cultural Subtext",
			"Humor Irony and Sarcasm", "Philosophical Argumentation", "Multilayered Negotiation",
			"Public Intellectual Discussion", "Precision Under Pressure",
		},
		Gram: []string{
			"Rhetorical Structures", "Nuanced Modality", "Register Shifting",
			"Complex Conditionals", "Advanced Cohesion", "Metadiscourse Control",
			"Pragmatic Softening and Facework", "Precision in Reference Tracking", "Advanced Ellipsis in Speech",
			"Idiomatic Grammar Patterns", "High Density Information Packaging", "Subtle Inversion and Fronting",
			"Irony and Distancing Structures", "Discourse Framing at Scale", "Advanced Concession Structures",
			"Rhetorical Questioning", "Academic and Executive Syntax Switching", "Argument Architecture",
		},
	},
}
