// Package seed loads the sample data set on first boot so the platform
// is usable out of the box: two students, two recruiters, an admin, five
// assignment templates, and six open jobs.
package seed

import (
	"context"
	"time"

	"internmatch/internal/common"
	"internmatch/internal/domain/assignment"
	"internmatch/internal/domain/job"
	"internmatch/internal/domain/user"
	"internmatch/internal/store"
)

// Run writes the sample collections unless users already exist. It is
// safe to call on every boot.
func Run(ctx context.Context, s store.Store) error {
	var existing []user.User
	if err := s.Load(ctx, store.CollectionUsers, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now().UTC()
	return s.Save(ctx,
		store.Change{Collection: store.CollectionUsers, Value: sampleUsers()},
		store.Change{Collection: store.CollectionAssignments, Value: sampleAssignments()},
		store.Change{Collection: store.CollectionJobs, Value: sampleJobs(now)},
		store.Change{Collection: store.CollectionStudentAssignments, Value: []assignment.StudentAssignment{}},
		store.Change{Collection: store.CollectionApplications, Value: []any{}},
	)
}

func sampleUsers() []user.User {
	return []user.User{
		{
			ID:       "student1",
			Name:     "Alex Johnson",
			Email:    "alex@example.com",
			Password: "password123",
			Role:     user.RoleStudent,
			Resume: &user.Resume{
				Text:       "Computer Science student with strong skills in web development and UI/UX design. Looking for internships in frontend development.",
				Skills:     []string{"JavaScript", "React", "HTML", "CSS", "UI/UX Design", "Figma"},
				Education:  "B.S. Computer Science, University of Technology (2022-2026)",
				Experience: "Web Development Teaching Assistant (2023-Present)\n- Assisted in teaching web development fundamentals\n- Graded assignments and provided feedback to students",
			},
		},
		{
			ID:       "student2",
			Name:     "Jamie Smith",
			Email:    "jamie@example.com",
			Password: "password123",
			Role:     user.RoleStudent,
			Resume: &user.Resume{
				Text:       "Marketing student with experience in social media management and content creation. Seeking internships in digital marketing.",
				Skills:     []string{"Social Media", "Content Creation", "Marketing Analytics", "SEO", "Copywriting"},
				Education:  "B.A. Marketing, State University (2021-2025)",
				Experience: "Social Media Intern at Local Business (Summer 2023)\n- Created content calendar and posts for Instagram and Facebook\n- Increased engagement by 25% over three months",
			},
		},
		{
			ID:       "recruiter1",
			Name:     "Sarah Miller",
			Email:    "sarah@techco.com",
			Password: "password123",
			Role:     user.RoleRecruiter,
			Company:  "TechGrowth Inc.",
		},
		{
			ID:       "recruiter2",
			Name:     "Michael Wong",
			Email:    "michael@designfirm.com",
			Password: "password123",
			Role:     user.RoleRecruiter,
			Company:  "DesignFusion",
		},
		{
			ID:       "admin1",
			Name:     "Admin User",
			Email:    "admin@internmatch.com",
			Password: "admin123",
			Role:     user.RoleAdmin,
		},
	}
}

func sampleAssignments() []assignment.Assignment {
	return []assignment.Assignment{
		{
			ID:            "assignment1",
			Title:         "Frontend Development Challenge",
			Category:      "Engineering",
			Description:   "Demonstrate your frontend development skills by completing this coding challenge. Focus on UI implementation, responsiveness, and clean code.",
			EstimatedTime: "1-2 hours",
			Questions: []assignment.Question{
				{ID: "q1_1", Text: "Explain your approach to creating responsive web designs. What methodologies and tools do you prefer?", Type: assignment.QuestionTextarea},
				{ID: "q1_2", Text: "Describe how you would implement a navigation menu that works well on both desktop and mobile devices.", Type: assignment.QuestionTextarea},
				{ID: "q1_3", Text: "Which frontend framework do you prefer to work with?", Type: assignment.QuestionMultipleChoice, Options: []string{"React", "Vue", "Angular", "Svelte", "None/Vanilla JS"}},
				{ID: "q1_4", Text: "Share a link to a recent project or GitHub repository that showcases your frontend skills.", Type: assignment.QuestionText},
			},
		},
		{
			ID:            "assignment2",
			Title:         "Marketing Campaign Analysis",
			Category:      "Marketing",
			Description:   "Analyze a sample marketing campaign and provide insights and recommendations for improvement.",
			EstimatedTime: "1-2 hours",
			Questions: []assignment.Question{
				{ID: "q2_1", Text: "Review the attached campaign metrics. What are the three most important insights you can identify?", Type: assignment.QuestionTextarea},
				{ID: "q2_2", Text: "If you were to reallocate the campaign budget, which channels would you invest more in and why?", Type: assignment.QuestionTextarea},
				{ID: "q2_3", Text: "Describe a marketing campaign you've worked on or studied that was particularly successful. What made it effective?", Type: assignment.QuestionTextarea},
				{ID: "q2_4", Text: "Which metric do you believe is most important for measuring the success of a digital marketing campaign?", Type: assignment.QuestionMultipleChoice, Options: []string{"Conversion Rate", "ROI", "Engagement", "Reach/Impressions", "Customer Acquisition Cost"}},
			},
		},
		{
			ID:            "assignment3",
			Title:         "Product Feature Prioritization",
			Category:      "Product",
			Description:   "Evaluate a list of potential product features and create a prioritization framework.",
			EstimatedTime: "1-2 hours",
			Questions: []assignment.Question{
				{ID: "q3_1", Text: "Review the list of proposed features. How would you prioritize them and why?", Type: assignment.QuestionTextarea},
				{ID: "q3_2", Text: "Describe your approach to determining which features to build first when resources are limited.", Type: assignment.QuestionTextarea},
				{ID: "q3_3", Text: "How would you measure the success of a newly launched feature?", Type: assignment.QuestionTextarea},
				{ID: "q3_4", Text: "Which product prioritization framework do you prefer?", Type: assignment.QuestionMultipleChoice, Options: []string{"RICE Score", "Kano Model", "MoSCoW Method", "Value vs Effort", "Other (please explain)"}},
			},
		},
		{
			ID:            "assignment4",
			Title:         "Backend Architecture Design",
			Category:      "Engineering",
			Description:   "Design a backend architecture for a scalable web application with specific requirements.",
			EstimatedTime: "2-3 hours",
			Questions: []assignment.Question{
				{ID: "q4_1", Text: "Design a system architecture for a social media platform that needs to support millions of users. Include database choices, API design, and scalability considerations.", Type: assignment.QuestionTextarea},
				{ID: "q4_2", Text: "How would you implement authentication and authorization in this system?", Type: assignment.QuestionTextarea},
				{ID: "q4_3", Text: "Describe your approach to handling high traffic and ensuring system reliability.", Type: assignment.QuestionTextarea},
				{ID: "q4_4", Text: "Which backend technology stack would you choose for this project?", Type: assignment.QuestionText},
			},
		},
		{
			ID:            "assignment5",
			Title:         "Data Analysis Challenge",
			Category:      "Analytics",
			Description:   "Analyze a dataset and derive meaningful insights to inform business decisions.",
			EstimatedTime: "2-3 hours",
			Questions: []assignment.Question{
				{ID: "q5_1", Text: "Using the provided dataset, identify key trends and patterns that could impact business strategy.", Type: assignment.QuestionTextarea},
				{ID: "q5_2", Text: "Create a visualization that effectively communicates your main findings.", Type: assignment.QuestionText},
				{ID: "q5_3", Text: "What additional data would you request to enhance your analysis, and why?", Type: assignment.QuestionTextarea},
				{ID: "q5_4", Text: "Which data analysis tools are you most proficient with?", Type: assignment.QuestionMultipleChoice, Options: []string{"Python (Pandas/NumPy)", "R", "SQL", "Excel/Google Sheets", "Tableau/Power BI"}},
			},
		},
	}
}

func sampleJobs(now time.Time) []job.Job {
	return []job.Job{
		{
			ID:                  "job1",
			Title:               "Frontend Developer Intern",
			Company:             "TechGrowth Inc.",
			Location:            "San Francisco, CA",
			Type:                "Internship",
			Description:         "Join our team as a Frontend Developer Intern and help build amazing user experiences for our customers. You will work closely with our design and product teams to implement responsive and performant UIs.",
			Requirements:        "Strong knowledge of HTML, CSS, and JavaScript. Familiarity with React or similar frontend frameworks. Understanding of responsive design principles. Currently pursuing a degree in Computer Science or related field.",
			LogoURL:             "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg",
			RecruiterID:         "recruiter1",
			DatePosted:          now.AddDate(0, 0, -7),
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Engineering"},
			Applications:        []common.ID{},
		},
		{
			ID:                  "job2",
			Title:               "UX Design Intern",
			Company:             "DesignFusion",
			Location:            "New York, NY",
			Type:                "Remote",
			Description:         "DesignFusion is looking for a talented UX Design Intern to join our creative team. You will assist in designing user interfaces for web and mobile applications, conduct user research, and create wireframes and prototypes.",
			Requirements:        "Portfolio showcasing UI/UX design projects. Proficiency with design tools such as Figma, Sketch, or Adobe XD. Understanding of user-centered design principles. Currently pursuing a degree in Design, HCI, or related field.",
			LogoURL:             "https://images.pexels.com/photos/2103127/pexels-photo-2103127.jpeg",
			RecruiterID:         "recruiter2",
			DatePosted:          now.AddDate(0, 0, -3),
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Product"},
			Applications:        []common.ID{},
		},
		{
			ID:                  "job3",
			Title:               "Marketing Intern",
			Company:             "BrandWave",
			Location:            "Chicago, IL",
			Type:                "Hybrid",
			Description:         "BrandWave is seeking a Marketing Intern to support our digital marketing initiatives. You will assist with social media management, content creation, email campaigns, and marketing analytics.",
			Requirements:        "Strong written and verbal communication skills. Familiarity with social media platforms and content creation tools. Basic understanding of marketing analytics. Currently pursuing a degree in Marketing, Communications, or related field.",
			LogoURL:             "https://images.pexels.com/photos/3182812/pexels-photo-3182812.jpeg",
			RecruiterID:         "recruiter1",
			DatePosted:          now.AddDate(0, 0, -5),
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Marketing"},
			Applications:        []common.ID{},
		},
		{
			ID:                  "job4",
			Title:               "Data Analysis Intern",
			Company:             "TechGrowth Inc.",
			Location:            "San Francisco, CA",
			Type:                "On-site",
			Description:         "TechGrowth is looking for a Data Analysis Intern to join our analytics team. You will help collect, process, and analyze data to support business decisions, create visualizations, and assist with building predictive models.",
			Requirements:        "Experience with data analysis tools like Python, R, or Excel. Basic understanding of statistics and data visualization. Ability to communicate insights clearly. Currently pursuing a degree in Statistics, Mathematics, Computer Science, or related field.",
			LogoURL:             "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg",
			RecruiterID:         "recruiter1",
			DatePosted:          now.AddDate(0, 0, -2),
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Analytics"},
			Applications:        []common.ID{},
		},
		{
			ID:                  "job5",
			Title:               "Product Management Intern",
			Company:             "DesignFusion",
			Location:            "Boston, MA",
			Type:                "Remote",
			Description:         "Join DesignFusion as a Product Management Intern and gain hands-on experience in the product development lifecycle. You will work with cross-functional teams to define requirements, conduct market research, and contribute to product strategy.",
			Requirements:        "Strong analytical and problem-solving skills. Excellent communication and collaboration abilities. Interest in user-centered design and product development. Currently pursuing a degree in Business, Computer Science, or related field.",
			LogoURL:             "https://images.pexels.com/photos/2103127/pexels-photo-2103127.jpeg",
			RecruiterID:         "recruiter2",
			DatePosted:          now.AddDate(0, 0, -1),
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Product"},
			Applications:        []common.ID{},
		},
		{
			ID:                  "job6",
			Title:               "Backend Developer Intern",
			Company:             "TechGrowth Inc.",
			Location:            "San Francisco, CA",
			Type:                "Hybrid",
			Description:         "TechGrowth is seeking a Backend Developer Intern to join our engineering team. You will assist in designing and implementing APIs, database structures, and server-side logic for our web applications.",
			Requirements:        "Knowledge of server-side programming languages like Node.js, Python, or Java. Familiarity with databases and RESTful APIs. Understanding of basic software engineering principles. Currently pursuing a degree in Computer Science or related field.",
			LogoURL:             "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg",
			RecruiterID:         "recruiter1",
			DatePosted:          now,
			Status:              job.StatusOpen,
			RequiredAssignments: []string{"Engineering"},
			Applications:        []common.ID{},
		},
	}
}
