package models

type BusinessProfile struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	BusinessName      *string  `json:"business_name"`
	Industry          *string  `json:"industry"`
	BusinessStage     *string  `json:"business_stage"`
	RevenueProjection *float64 `json:"revenue_projection"`
	YearsOfExperience *int     `json:"years_of_experience"`
	EducationLevel    *string  `json:"education_level"`
}
