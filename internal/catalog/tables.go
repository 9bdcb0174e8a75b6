package catalog

// DefaultTables returns the built-in reference data
func DefaultTables() Tables {
	return Tables{
		TechSkills: []string{
			// Programming languages, most specific first
			"python", "javascript", "typescript", "java", "kotlin", "scala", "swift",
			"c++", "c#", "objective-c", "go", "rust", "php", "ruby", "r", "c",
			"matlab", "sql", "html", "css", "xml", "json", "yaml",

			// Frameworks and libraries
			"react", "angular", "vue.js", "vue", "node.js", "express.js", "express",
			"django", "flask", "fastapi", "spring boot", "spring", "laravel", "rails",
			"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib",
			"seaborn", "plotly", "d3.js", "jquery", "bootstrap", "tailwind",

			// Databases
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
			"dynamodb", "sqlite", "oracle", "sql server", "mariadb",

			// Cloud and DevOps
			"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins",
			"github actions", "gitlab ci", "terraform", "ansible", "nginx", "apache",
			"linux", "ubuntu", "centos", "debian", "windows server",

			// Tools and platforms
			"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
			"microsoft teams", "visual studio", "vscode", "intellij", "eclipse",
			"jupyter", "postman", "insomnia", "figma", "sketch", "adobe",
		},
		BusinessConcepts: []string{
			"leadership", "management", "teamwork", "collaboration", "communication", "problem solving",
			"project management", "agile", "scrum", "kanban", "stakeholder management", "strategy",
			"analysis", "research", "documentation", "presentation", "mentoring", "coaching",
		},
		TeachingSkills: []string{
			"curriculum development", "lesson planning", "classroom management", "assessment",
			"differentiated instruction", "educational technology", "student engagement",
			"learning objectives", "pedagogy", "educational psychology", "special needs",
			"inclusive education", "parent communication", "professional development",
		},
		TeachingConcepts: []string{
			"education", "learning", "students", "curriculum", "assessment",
			"classroom", "instruction", "pedagogy", "academic",
		},
		TeachingDenylist: []string{"docker", "kubernetes", "aws", "terraform"},
		Categories: []CategoryKeywords{
			{CategoryTeaching, []string{
				"teacher", "instructor", "professor", "educator", "tutor", "lecturer",
				"teaching", "education", "classroom", "curriculum", "student", "school",
			}},
			{CategoryHealthcare, []string{"nurse", "doctor", "physician", "medical", "clinical", "patient", "hospital"}},
			{CategoryTechnology, []string{"developer", "engineer", "programmer", "software", "technical", "coding"}},
			{CategoryBusiness, []string{"manager", "analyst", "consultant", "sales", "marketing", "finance"}},
			{CategoryResearch, []string{"research", "scientist", "analyst", "data", "study", "investigation"}},
		},
	}
}
