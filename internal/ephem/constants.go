package ephem

import "math"

// Numeric constants of the solar theory.
//
// The series coefficients below are the truncated low-precision solar theory
// (libTheSky lineage) that defines the arc-minute accuracy class of this
// package. They are empirical values, not tunable parameters; changing any of
// them changes the results of every downstream computation.

// Angle and time-scale constants.
const (
	twoPi = 6.28318530717958647693

	// megaPi is added before folding with math.Mod so that the argument is
	// positive for any angle the series can produce.
	megaPi = 3.14159265358979323846e6

	radToDeg = 57.2957795130823208768 // degrees per radian
	radToHr  = 3.81971863420548805845 // hours per radian (24/2pi)

	epochJ2000       = 2451545.0 // Julian Day of the J2000.0 epoch
	daysPerCentury   = 36525.0   // days per Julian century
	solarToSidereal  = 1.002737909350795
	gregorianMinYear = 1582 // Julian Day formula is Gregorian-only
)

// Physical constants (consistent centimeter units for the parallax term).
const (
	earthRadiusCm = 6.3781370e8      // Earth's equatorial radius, cm (WGS84)
	auCm          = 1.49597870700e13 // astronomical unit, cm (IAU 2012)
)

// Mean longitude of the Sun, radians, polynomial in Julian centuries T.
const (
	meanLon0 = 4.895063168
	meanLon1 = 628.331966786
	meanLon2 = 5.291838e-6
)

// Mean anomaly of the Sun, radians.
const (
	meanAnom0 = 6.240060141
	meanAnom1 = 628.301955152
	meanAnom2 = -2.682571e-6
)

// Eccentricity of the Earth's orbit, dimensionless.
const (
	eccen0 = 0.016708634
	eccen1 = -0.000042037
	eccen2 = -0.0000001267
)

// Equation of the centre, radians: three-term Fourier sum in the mean anomaly.
const (
	center1a = 3.34161088e-2
	center1b = -8.40725e-5
	center1c = -2.443e-7
	center2a = 3.489437e-4
	center2b = -1.76278e-6
	center3a = 5.044e-6
)

// Semi-major-axis factor of the distance formula, AU.
const distFactor = 1.000001018

// Longitude of the Moon's mean ascending node, radians.
const (
	node0 = 2.1824390725
	node1 = -33.7570464271
	node2 = 3.622256e-5
	node3 = 3.7337958e-8
	node4 = -2.879321e-10 // coefficient of T^4
)

// Mean longitude of the Moon, radians.
const (
	moonLon0 = 3.8103417
	moonLon1 = 8399.709113
)

// Nutation in longitude, radians: four-term sum.
const (
	nutLonNode  = -8.338795e-5 // sin(node)
	nutLonSun   = -6.39954e-6  // sin(2 * mean longitude)
	nutLonMoon  = -1.115e-6    // sin(2 * lunar mean longitude)
	nutLonNode2 = 1.018e-6     // sin(2 * node)
)

// Aberration constant, radians * AU (divide by distance).
const aberration = -9.93087e-5

// Mean obliquity of the ecliptic, radians: cubic polynomial in T.
const (
	obliq0 = 0.409092804222
	obliq1 = -2.26965525e-4
	obliq2 = -2.86e-9
	obliq3 = 8.78967e-9
)

// Nutation in obliquity, radians: four-term sum.
const (
	nutOblNode  = 4.46e-5   // cos(node)
	nutOblSun   = 2.76e-6   // cos(2 * mean longitude)
	nutOblMoon  = 4.848e-7  // cos(2 * lunar mean longitude)
	nutOblNode2 = -4.36e-7  // cos(2 * node)
)

// Greenwich mean sidereal time, radians: polynomial in days (gmst1) and
// centuries since J2000.0.
const (
	gmst0 = 4.89496121273579229
	gmst1 = 6.3003880989849575
	gmst2 = 6.77070812713916e-6
	gmst3 = -4.5087296615715e-10
)

// Empirical atmospheric refraction formula, radians, with the reference
// atmosphere its coefficients were fitted for.
const (
	refractA = 2.9670597e-4
	refractB = 3.137559e-3
	refractC = 8.91863e-2

	refPressureKPa   = 101.0 // reference pressure, kPa
	refTemperatureK  = 283.0 // reference temperature, K
)

// The refraction formula has a pole where its inner denominator vanishes,
// at altitude -refractC (about -5.1 degrees). Below that the formula is
// outside its fitted domain; corrections larger than maxRefraction are
// treated as numerically invalid and dropped.
const maxRefraction = 0.05 // rad, far above any physical refraction

// norm2Pi folds an angle into [0, 2*pi).
func norm2Pi(angle float64) float64 {
	return math.Mod(angle+megaPi, twoPi)
}
