package repositories

import (
	"github.com/folio-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves all projects ordered by id ascending
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("id asc").Find(&projects)
	return projects, storeErr("list projects", result.Error)
}

// Create inserts a new project; the id is assigned by the store
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	project.ID = 0
	result := r.db.Create(&project)
	return project, storeErr("insert project", result.Error)
}

// Delete removes a project by id. Deleting an id that does not exist
// is not an error, matching the store's delete semantics.
func (r *ProjectRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Project{}, id)
	return storeErr("delete project", result.Error)
}
