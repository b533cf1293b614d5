package repository

type CreateProfileOptions struct {
	AgentType string
	Template  string
}

type UpdateProfileOptions struct {
	AgentType string
	Template  string
}
