package drawing

import (
	"math"

	"github.com/katalvlaran/lvldraw/graphview"
)

// Spherical2D draws on the unit sphere. Each entry is (longitude, latitude)
// in radians; deltas live in the local (east, north) tangent frame and have
// great-circle length.
type Spherical2D struct {
	table
}

// NewSpherical2D places every node at (0, 0): the equator/meridian crossing.
func NewSpherical2D(g graphview.Graph) *Spherical2D {
	return &Spherical2D{table: newTable(g, 2)}
}

// to3D converts (lon, lat) to a unit vector.
func to3D(lon, lat float64) (x, y, z float64) {
	return math.Cos(lat) * math.Cos(lon), math.Cos(lat) * math.Sin(lon), math.Sin(lat)
}

// Delta writes the great-circle tangent at entry i pointing toward entry j;
// its norm is the spherical distance.
func (d *Spherical2D) Delta(i, j int, out []float64) {
	loni, lati := d.coords[i][0], d.coords[i][1]
	lonj, latj := d.coords[j][0], d.coords[j][1]
	px, py, pz := to3D(loni, lati)
	qx, qy, qz := to3D(lonj, latj)

	dot := px*qx + py*qy + pz*qz
	// Component of q orthogonal to p spans the geodesic direction.
	tx, ty, tz := qx-dot*px, qy-dot*py, qz-dot*pz
	tn := math.Sqrt(tx*tx + ty*ty + tz*tz)
	if tn == 0 {
		// Coincident or antipodal; no unique geodesic.
		out[0], out[1] = 0, 0
		return
	}
	dist := math.Atan2(tn, dot)
	tx, ty, tz = tx/tn, ty/tn, tz/tn

	// Local frame at p: east ⟂ meridian, north along it.
	ex, ey := -math.Sin(loni), math.Cos(loni)
	nx, ny, nz := -math.Sin(lati)*math.Cos(loni), -math.Sin(lati)*math.Sin(loni), math.Cos(lati)
	out[0] = dist * (tx*ex + ty*ey)
	out[1] = dist * (tx*nx + ty*ny + tz*nz)
}

// Shift moves entry i along the exponential map of scale·v and converts the
// landing point back to (lon, lat), so entries always stay on the sphere.
func (d *Spherical2D) Shift(i int, v []float64, scale float64) {
	vx, vy := scale*v[0], scale*v[1]
	theta := math.Hypot(vx, vy)
	if theta == 0 {
		return
	}

	lon, lat := d.coords[i][0], d.coords[i][1]
	px, py, pz := to3D(lon, lat)
	ex, ey := -math.Sin(lon), math.Cos(lon)
	nx, ny, nz := -math.Sin(lat)*math.Cos(lon), -math.Sin(lat)*math.Sin(lon), math.Cos(lat)

	// Unit direction in the tangent plane.
	ux := (vx*ex + vy*nx) / theta
	uy := (vx*ey + vy*ny) / theta
	uz := (vy * nz) / theta

	// Geodesic: cos(θ)·p + sin(θ)·u, then renormalize against drift.
	qx := math.Cos(theta)*px + math.Sin(theta)*ux
	qy := math.Cos(theta)*py + math.Sin(theta)*uy
	qz := math.Cos(theta)*pz + math.Sin(theta)*uz
	qn := math.Sqrt(qx*qx + qy*qy + qz*qz)
	qx, qy, qz = qx/qn, qy/qn, qz/qn

	d.coords[i][0] = math.Atan2(qy, qx)
	d.coords[i][1] = math.Asin(math.Max(-1, math.Min(1, qz)))
}
