package core

// Material holds the Phong reflectance coefficients of a surface.
// The zero value is a black, non-reflective, opaque material.
type Material struct {
	KD        Factor // Diffuse
	KS        Factor // Specular
	KT        Factor // Transparency
	KR        Factor // Mirror reflectivity
	Shininess int    // Specular exponent
}

// NewMaterial returns the default material
func NewMaterial() Material {
	return Material{}
}

// WithDiffuse returns a copy with a uniform diffuse coefficient
func (m Material) WithDiffuse(kd float64) Material {
	m.KD = Uniform(kd)
	return m
}

// WithSpecular returns a copy with a uniform specular coefficient
func (m Material) WithSpecular(ks float64) Material {
	m.KS = Uniform(ks)
	return m
}

// WithDiffuseFactor returns a copy with a per-channel diffuse coefficient
func (m Material) WithDiffuseFactor(kd Factor) Material {
	m.KD = kd
	return m
}

// WithSpecularFactor returns a copy with a per-channel specular coefficient
func (m Material) WithSpecularFactor(ks Factor) Material {
	m.KS = ks
	return m
}

// WithShininess returns a copy with the given specular exponent
func (m Material) WithShininess(n int) Material {
	m.Shininess = n
	return m
}

// WithTransparency returns a copy with a per-channel transparency coefficient
func (m Material) WithTransparency(kt Factor) Material {
	m.KT = kt
	return m
}

// WithReflection returns a copy with a per-channel reflectivity coefficient
func (m Material) WithReflection(kr Factor) Material {
	m.KR = kr
	return m
}
