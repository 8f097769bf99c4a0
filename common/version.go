package common

const (
	Product = `sbomtool`
	Version = `v1.2.0`
)
