package loader

import (
	"strings"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

func (csvLoader) Load(name string, content []byte, opt dataset.Options) (*dataset.Table, error) {
	return dataset.BuildWithOptions(string(content), name, opt)
}
