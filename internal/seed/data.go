package seed

import (
	"time"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
)

type demoUser struct {
	Name         string
	Email        string
	Demographics map[string]any
	JoinedAgo    time.Duration
	Answers      []demoAnswer
}

type demoAnswer struct {
	Question string
	Answer   string
	QuizType string
}

type demoMentor struct {
	Name         string
	Industry     string
	Expertise    string
	Years        int
	Availability models.Availability
}

type demoJob struct {
	Title, Company, Description string
	Industry, Location          string
	SalaryRange, Requirements   string
	PostedAgo                   time.Duration
}

const day = 24 * time.Hour

var users = []demoUser{
	{
		Name:  "Priya Sharma",
		Email: "priya.sharma@example.com",
		Demographics: map[string]any{
			"age":            22,
			"location":       "Mumbai, India",
			"education":      "B.Tech Computer Science",
			"current_status": "Final Year Student",
		},
		JoinedAgo: 30 * day,
		Answers: []demoAnswer{
			{"What are your key skills?", "Python programming, data analysis, machine learning, problem-solving", models.QuizTypeSkills},
			{"What are your career interests?", "Data science, artificial intelligence and building intelligent systems", models.QuizTypeInterests},
			{"What is your work experience?", "2 internships in data analytics, personal projects in ML", models.QuizTypeExperience},
		},
	},
	{
		Name:  "Rahul Verma",
		Email: "rahul.verma@example.com",
		Demographics: map[string]any{
			"age":            24,
			"location":       "Bangalore, India",
			"education":      "MBA",
			"current_status": "Working Professional",
		},
		JoinedAgo: 15 * day,
		Answers: []demoAnswer{
			{"What are your key skills?", "Business strategy, market analysis, project management, leadership", models.QuizTypeSkills},
			{"What are your career interests?", "Product management, business consulting, startup ecosystem", models.QuizTypeInterests},
		},
	},
	{
		Name:  "Ananya Reddy",
		Email: "ananya.reddy@example.com",
		Demographics: map[string]any{
			"age":            21,
			"location":       "Hyderabad, India",
			"education":      "B.Des Design",
			"current_status": "Recent Graduate",
		},
		JoinedAgo: 7 * day,
		Answers: []demoAnswer{
			{"What are your key skills?", "UI/UX design, Figma, user research, prototyping", models.QuizTypeSkills},
			{"What are your career interests?", "Product design, design systems, user experience research", models.QuizTypeInterests},
		},
	},
}

var mentors = []demoMentor{
	{"Ruchi Chauhan", "technology", "Data Science", 6, models.Availability{"monday": {"10:00-12:00", "14:00-16:00"}, "friday": {"14:00-16:00"}}},
	{"Aparna Vasudevan", "technology", "Machine Learning", 7, models.Availability{"tuesday": {"14:00-16:00"}, "saturday": {"10:00-12:00"}}},
	{"Chetan Mahajan", "technology", "Data Engineering", 9, models.Availability{"wednesday": {"15:00-17:00"}}},
	{"Anish Chakraborty", "technology", "Backend Development", 12, models.Availability{"wednesday": {"13:00-15:00"}, "saturday": {"09:00-11:00"}}},
	{"Marmik Patel", "design", "UI/UX Design", 7, models.Availability{"monday": {"13:00-15:00"}}},
	{"Nikita Shah", "design", "UX Research", 6, models.Availability{"wednesday": {"14:00-16:00"}}},
	{"Rajiv Mehta", "finance", "Investment Banking", 14, models.Availability{"tuesday": {"17:00-19:00"}, "friday": {"10:00-12:00"}}},
	{"Dr. Aisha Patel", "healthcare", "Healthcare Management", 12, models.Availability{"thursday": {"11:00-13:00"}}},
	{"Sunita Krishnan", "education", "EdTech Innovation", 8, models.Availability{"saturday": {"13:00-15:00"}}},
}

var jobs = []demoJob{
	{
		Title:        "Senior Data Scientist",
		Company:      "CodeMaya",
		Description:  "Build machine learning models for predictive analytics and business intelligence.",
		Industry:     "technology",
		Location:     "Bangalore, India",
		SalaryRange:  "₹20,00,000 - ₹28,00,000",
		Requirements: "- 5+ years in data science\n- Python, R and SQL\n- Deep learning frameworks",
		PostedAgo:    3 * day,
	},
	{
		Title:        "Data Analyst",
		Company:      "Magic Bus India Foundation",
		Description:  "Analyse programme data to measure impact across educational initiatives.",
		Industry:     "nonprofit",
		Location:     "Noida, India",
		SalaryRange:  "₹6,00,000 - ₹9,00,000",
		Requirements: "- Data cleaning and visualisation\n- Statistical methods",
		PostedAgo:    7 * day,
	},
	{
		Title:        "UI/UX Designer",
		Company:      "Draupadi's",
		Description:  "Design intuitive interfaces for web and mobile applications.",
		Industry:     "technology",
		Location:     "Kolkata, India",
		SalaryRange:  "₹8,00,000 - ₹12,00,000",
		Requirements: "- Figma or Sketch\n- User research and wireframing\n- Portfolio",
		PostedAgo:    2 * day,
	},
	{
		Title:        "Front-end Developer",
		Company:      "IQminds Technology",
		Description:  "Develop responsive user interfaces with modern JavaScript frameworks.",
		Industry:     "technology",
		Location:     "Noida, India",
		SalaryRange:  "₹8,00,000 - ₹14,00,000",
		Requirements: "- HTML, CSS, JavaScript\n- React or Angular",
		PostedAgo:    4 * day,
	},
	{
		Title:        "Backend Developer",
		Company:      "Verinite",
		Description:  "Build scalable backend services for banking and fintech applications.",
		Industry:     "finance",
		Location:     "Mumbai, India",
		SalaryRange:  "₹10,00,000 - ₹18,00,000",
		Requirements: "- Web API development\n- Microservices\n- Java or .NET",
		PostedAgo:    5 * day,
	},
	{
		Title:        "Python Developer",
		Company:      "DataInsights India",
		Description:  "Develop data processing pipelines and analytics tools in Python.",
		Industry:     "technology",
		Location:     "Chennai, India",
		SalaryRange:  "₹8,00,000 - ₹14,00,000",
		Requirements: "- Strong Python\n- SQL and NoSQL databases",
		PostedAgo:    6 * day,
	},
	{
		Title:        "Associate Product Manager",
		Company:      "Razorpay",
		Description:  "Own discovery and delivery for payment features used by millions of merchants.",
		Industry:     "finance",
		Location:     "Bangalore, India",
		SalaryRange:  "₹18,00,000 - ₹26,00,000",
		Requirements: "- 2+ years in product or consulting\n- Data-driven decision making",
		PostedAgo:    1 * day,
	},
}
