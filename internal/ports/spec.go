package ports

import "devshell/internal/types"

type DescriptorPort interface {
	LoadDescriptor(path string) (types.Descriptor, error)
}
