package repository

type CreateProjectOptions struct {
	Name string
}

type CreateThreadOptions struct {
	ProjectID string
	Name      string
}

type ListThreadsOptions struct {
	ProjectID string
}
