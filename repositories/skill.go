package repositories

import (
	"github.com/folio-simple/models"
	"gorm.io/gorm"
)

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository instance
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// FindAll retrieves all skills ordered by id ascending
func (r *SkillRepository) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	result := r.db.Order("id asc").Find(&skills)
	return skills, storeErr("list skills", result.Error)
}

// Create inserts a new skill; the id is assigned by the store
func (r *SkillRepository) Create(skill models.Skill) (models.Skill, error) {
	skill.ID = 0
	result := r.db.Create(&skill)
	return skill, storeErr("insert skill", result.Error)
}

// Delete removes a skill by id. Idempotent like ProjectRepository.Delete.
func (r *SkillRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Skill{}, id)
	return storeErr("delete skill", result.Error)
}
