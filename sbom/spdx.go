package sbom

// fromPackage converts one SPDX package into a CycloneDX shaped component.
// SPDX does not say what kind of thing a package is, so it is a library.
func (it *Combiner) fromPackage(pkg packageView) *Component {
	component := &Component{
		Type:    defaultType,
		Name:    pkg.name(),
		Version: pkg.version(),
	}
	if ref, ok := pkg.spdxID(); ok {
		component.BOMRef = ref
	} else {
		component.BOMRef = it.Identity().String()
	}
	if concluded, ok := pkg.concluded(); ok {
		component.Licenses = append(component.Licenses, Identifier(concluded))
		it.Log.Trace("Converted SPDX licenseConcluded %s to CycloneDX format for %s", concluded, component.Name)
	}
	if declared, ok := pkg.declared(); ok {
		component.Licenses = append(component.Licenses, Identifier(declared))
		it.Log.Trace("Converted SPDX licenseDeclared %s to CycloneDX format for %s", declared, component.Name)
	}
	return component
}
