package services

import (
	"context"

	"github.com/folio-simple/dto"
	"github.com/folio-simple/models"
	"github.com/folio-simple/validate"
	"golang.org/x/sync/errgroup"
)

// projectStore is the slice of the project repository the services need.
type projectStore interface {
	FindAll() ([]models.Project, error)
	Create(project models.Project) (models.Project, error)
	Delete(id int64) error
}

// skillStore is the slice of the skill repository the services need.
type skillStore interface {
	FindAll() ([]models.Skill, error)
	Create(skill models.Skill) (models.Skill, error)
	Delete(id int64) error
}

// settingStore is the slice of the setting repository the services need.
type settingStore interface {
	GetSingleton() (models.SiteSetting, error)
	UpdateWhatsappLink(id int64, link string) error
}

// AdminService sequences the admin content workflow: validate the input,
// persist the single write, then re-derive the displayed state from a fresh
// full load. Local state is never patched incrementally, so what the admin
// sees always matches the store.
type AdminService struct {
	projects projectStore
	skills   skillStore
	settings settingStore
}

// NewAdminService creates a new admin service instance
func NewAdminService(projects projectStore, skills skillStore, settings settingStore) *AdminService {
	return &AdminService{
		projects: projects,
		skills:   skills,
		settings: settings,
	}
}

// LoadOverview fetches projects, skills and site settings concurrently and
// waits for all three before returning. Any failure fails the whole load;
// the caller retries the action rather than rendering partial state.
func (s *AdminService) LoadOverview(ctx context.Context) (dto.AdminOverviewResponse, error) {
	var overview dto.AdminOverviewResponse

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		projects, err := s.projects.FindAll()
		if err != nil {
			return err
		}
		overview.Projects = projects
		return nil
	})
	g.Go(func() error {
		skills, err := s.skills.FindAll()
		if err != nil {
			return err
		}
		overview.Skills = skills
		return nil
	})
	g.Go(func() error {
		setting, err := s.settings.GetSingleton()
		if err != nil {
			return err
		}
		overview.WhatsappLink = setting.WhatsappLink
		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.AdminOverviewResponse{}, err
	}
	if overview.Projects == nil {
		overview.Projects = []models.Project{}
	}
	if overview.Skills == nil {
		overview.Skills = []models.Skill{}
	}
	return overview, nil
}

// AddProject validates the candidate, inserts it and reloads the overview.
// On a validation failure no store call is made.
func (s *AdminService) AddProject(ctx context.Context, req dto.CreateProjectRequest) (dto.AdminOverviewResponse, error) {
	in, err := validate.Project(validate.ProjectInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}

	_, err = s.projects.Create(models.Project{
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
	})
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}
	return s.LoadOverview(ctx)
}

// DeleteProject deletes by id and reloads the overview. There is no
// validation or confirmation step.
func (s *AdminService) DeleteProject(ctx context.Context, id int64) (dto.AdminOverviewResponse, error) {
	if err := s.projects.Delete(id); err != nil {
		return dto.AdminOverviewResponse{}, err
	}
	return s.LoadOverview(ctx)
}

// AddSkill validates the candidate name, inserts it and reloads the overview.
func (s *AdminService) AddSkill(ctx context.Context, req dto.CreateSkillRequest) (dto.AdminOverviewResponse, error) {
	name, err := validate.SkillName(req.Name)
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}

	if _, err := s.skills.Create(models.Skill{Name: name}); err != nil {
		return dto.AdminOverviewResponse{}, err
	}
	return s.LoadOverview(ctx)
}

// DeleteSkill deletes by id and reloads the overview.
func (s *AdminService) DeleteSkill(ctx context.Context, id int64) (dto.AdminOverviewResponse, error) {
	if err := s.skills.Delete(id); err != nil {
		return dto.AdminOverviewResponse{}, err
	}
	return s.LoadOverview(ctx)
}

// UpdateWhatsappLink validates the link, re-fetches the settings singleton
// to get a fresh row id and writes the new link. The id from any earlier
// load is never reused; acting on a stale id is worse than one extra read.
// Returns the stored (trimmed) link.
func (s *AdminService) UpdateWhatsappLink(link string) (string, error) {
	trimmed, err := validate.WhatsappLink(link)
	if err != nil {
		return "", err
	}

	setting, err := s.settings.GetSingleton()
	if err != nil {
		return "", err
	}

	if err := s.settings.UpdateWhatsappLink(setting.ID, trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
