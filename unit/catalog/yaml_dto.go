// SPDX-License-Identifier: MIT

package catalog

type yamlCatalog struct {
	Units []yamlUnit `yaml:"units"`
}

type yamlUnit struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`

	// Exactly one of Base and Dims is set. Dims exponents are integers or
	// fractions written "p/q".
	Base string            `yaml:"base"`
	Dims map[string]string `yaml:"dims"`

	Scale    int      `yaml:"scale"`
	Display  bool     `yaml:"display"`
	Prefixes []string `yaml:"prefixes"`
}
