package config

// Seedfile is the YAML document that pre-populates the directory.
type Seedfile struct {
	Departments []DepartmentDTO `yaml:"departments" validate:"dive"`
}

// DepartmentDTO is one department entry of a seed file.
// A department must list at least one employee.
type DepartmentDTO struct {
	Name      string   `yaml:"name" validate:"required"`
	Employees []string `yaml:"employees" validate:"required,min=1,dive,required"`
}
