package application

const (
	msgInputNotProvided = "Input data not provided"
	msgAlreadyExists    = "Client already registered"
)
