package model

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
