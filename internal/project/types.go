package project

const (
	DefaultProjectName = "Helion Main Project"
	DefaultThreadName  = "Initial Memory Thread"

	// UntitledThreadName is used when a thread is created without a name.
	UntitledThreadName = "New Thread"
)

type CreateProjectInput struct {
	Name string
}

type CreateThreadInput struct {
	ProjectID string
	Name      string
}
