package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	ID               JobID           `gorm:"type:uuid;primaryKey" json:"id"`
	EmployerID       UserID          `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title            string          `gorm:"not null" json:"title"`
	Company          string          `gorm:"not null" json:"company"`
	Location         string          `json:"location"`
	EmploymentType   EmploymentType  `gorm:"type:varchar(20);default:'Full-Time'" json:"employment_type"`
	ExperienceLevel  ExperienceLevel `gorm:"type:varchar(20);default:'Junior'" json:"experience_level"`
	SalaryRange      string          `json:"salary_range"`
	Skills           datatypes.JSON  `gorm:"type:jsonb" json:"-"`
	Responsibilities datatypes.JSON  `gorm:"type:jsonb" json:"-"`
	Qualifications   datatypes.JSON  `gorm:"type:jsonb" json:"-"`
	Benefits         datatypes.JSON  `gorm:"type:jsonb" json:"-"`
	Description      string          `json:"description"`
	PostedAt         time.Time       `gorm:"autoCreateTime" json:"posted_at"`
	Deadline         *time.Time      `json:"deadline,omitempty"`
	Timestamps

	// Relations
	Employer *User `gorm:"foreignKey:EmployerID" json:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = JobID(uuid.NewString())
	}
	return nil
}

func listFromJSON(raw datatypes.JSON) []string {
	var out []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func listToJSON(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}

func (j *Job) GetSkills() []string           { return listFromJSON(j.Skills) }
func (j *Job) GetResponsibilities() []string { return listFromJSON(j.Responsibilities) }
func (j *Job) GetQualifications() []string   { return listFromJSON(j.Qualifications) }
func (j *Job) GetBenefits() []string         { return listFromJSON(j.Benefits) }

func (j *Job) SetSkills(v []string)           { j.Skills = listToJSON(v) }
func (j *Job) SetResponsibilities(v []string) { j.Responsibilities = listToJSON(v) }
func (j *Job) SetQualifications(v []string)   { j.Qualifications = listToJSON(v) }
func (j *Job) SetBenefits(v []string)         { j.Benefits = listToJSON(v) }
