package app

import (
	"devshell/internal/adapters"
	"devshell/internal/ports"
)

type Service struct {
	Descriptor ports.DescriptorPort
	HostEnv    ports.HostEnvPort
}

func NewService() Service {
	return Service{
		Descriptor: adapters.NewDescriptorFileAdapter(),
		HostEnv:    adapters.NewHostEnvAdapter(),
	}
}
