package plans

// PlanLimits holds the entity quotas granted by a billing plan.
// A nil threshold means unlimited.
type PlanLimits struct {
	MaxFolders        *int `yaml:"max_folders" json:"max_folders"`
	MaxFilesPerFolder *int `yaml:"max_files_per_folder" json:"max_files_per_folder"`
}

// Unlimited reports whether the plan has no folder or file caps at all.
func (l PlanLimits) Unlimited() bool {
	return l.MaxFolders == nil && l.MaxFilesPerFolder == nil
}

// Plan describes one billing tier.
type Plan struct {
	ID          string     `yaml:"-" json:"id"`
	DisplayName string     `yaml:"display_name" json:"display_name"`
	Description string     `yaml:"description" json:"description"`
	Limits      PlanLimits `yaml:"limits" json:"limits"`
}

type planFile struct {
	Plans map[string]Plan `yaml:"plans"`
}
