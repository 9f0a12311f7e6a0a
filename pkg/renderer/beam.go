package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// goldenAngle spreads consecutive beam samples evenly around the disc
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// GenerateBeam returns ray followed by up to count-1 rays from the same head aimed at a disc
// of the given radius, centered distance along ray and perpendicular to it. Targets follow a
// deterministic golden-angle spiral. Rays that leave on the other side of the surface with
// normal n than ray itself are dropped.
func GenerateBeam(n core.Vector, ray core.Ray, distance, radius float64, count int) []core.Ray {
	rays := []core.Ray{ray}
	if count <= 1 || core.IsZero(radius) || core.IsZero(distance) {
		return rays
	}

	dir := ray.Direction()
	p0 := ray.Head()
	vX := dir.CreateNormal()
	vY := dir.Cross(vX)
	center := p0.Add(dir.Scale(distance))
	nv := core.AlignZero(n.Dot(dir))

	samples := count - 1
	for i := range samples {
		r := radius * math.Sqrt((float64(i)+0.5)/float64(samples))
		theta := float64(i) * goldenAngle
		target := center.Add(vX.Scale(r * math.Cos(theta))).Add(vY.Scale(r * math.Sin(theta)))

		v := target.Subtract(p0)
		nt := core.AlignZero(n.Dot(v.Normalize()))
		if nt*nv <= 0 {
			continue
		}
		if beamRay, err := core.NewRay(p0, v); err == nil {
			rays = append(rays, beamRay)
		}
	}
	return rays
}
