package ephem

import "math"

// Ecliptic is the output of the solar longitude series: the apparent position
// of the Sun along the ecliptic, referred to the true equinox of date.
type Ecliptic struct {
	Longitude         float64 // apparent geocentric ecliptic longitude, rad, [0, 2pi)
	Distance          float64 // geocentric distance, AU
	Obliquity         float64 // true obliquity of the ecliptic, rad
	NutationLongitude float64 // nutation in longitude, rad
}

// SolveEcliptic evaluates the truncated solar series for a given time scale.
// The sum of mean longitude, equation of the centre, aberration and nutation
// gives the apparent longitude; the obliquity gets its own nutation term.
func SolveEcliptic(ts Timescale) Ecliptic {
	l0 := meanLon0 + meanLon1*ts.T + meanLon2*ts.T2   // mean longitude
	ma := meanAnom0 + meanAnom1*ts.T + meanAnom2*ts.T2 // mean anomaly
	ecc := eccen0 + eccen1*ts.T + eccen2*ts.T2         // orbital eccentricity

	// Equation of the centre, three-term Fourier sum in the mean anomaly.
	center := (center1a+center1b*ts.T+center1c*ts.T2)*math.Sin(ma) +
		(center2a+center2b*ts.T)*math.Sin(2*ma) +
		center3a*math.Sin(3*ma)

	trueLon := l0 + center
	trueAnom := ma + center
	dist := distFactor * (1.0 - ecc*ecc) / (1.0 + ecc*math.Cos(trueAnom))

	// Nutation and annual aberration.
	node := node0 + node1*ts.T + node2*ts.T2 + node3*ts.T3 + node4*ts.T2*ts.T2
	moonLon := moonLon0 + moonLon1*ts.T
	nutLon := nutLonNode*math.Sin(node) + nutLonSun*math.Sin(2*l0) +
		nutLonMoon*math.Sin(2*moonLon) + nutLonNode2*math.Sin(2*node)
	aber := aberration / dist

	// True obliquity: mean obliquity plus nutation in obliquity. Computed
	// here because the node and mean-longitude arguments are already at hand.
	meanObliq := obliq0 + obliq1*ts.T + obliq2*ts.T2 + obliq3*ts.T3
	nutObliq := nutOblNode*math.Cos(node) + nutOblSun*math.Cos(2*l0) +
		nutOblMoon*math.Cos(2*moonLon) + nutOblNode2*math.Cos(2*node)

	return Ecliptic{
		Longitude:         norm2Pi(trueLon + aber + nutLon),
		Distance:          dist,
		Obliquity:         meanObliq + nutObliq,
		NutationLongitude: nutLon,
	}
}
