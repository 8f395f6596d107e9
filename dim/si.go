package dim

// SI is the default registry carrying the standard base and derived
// dimensions below. Unit tables and parsers default to it.
var SI = NewRegistry()

func mustBase(symbol string) *Dimension {
	d, err := SI.DeclareBase(symbol)
	if err != nil {
		panic(err)
	}

	return d
}

// SI base dimensions.
var (
	Time              = mustBase("T")
	Length            = mustBase("L")
	Mass              = mustBase("M")
	ElectricCurrent   = mustBase("I")
	Temperature       = mustBase("θ")
	AmountOfSubstance = mustBase("N")
	LuminousIntensity = mustBase("J")

	// LuminousFlux shares the luminous intensity identity (steradians are
	// dimensionless here).
	LuminousFlux = LuminousIntensity
)

// Derived dimensions.
var (
	Area         = Length.PowInt(2)
	Volume       = Length.PowInt(3)
	WaveNumber   = Length.PowInt(-1)
	Vergence     = WaveNumber
	Velocity     = Length.Div(Time)
	Speed        = Velocity
	Acceleration = Velocity.Div(Time)
	Force        = Mass.Mul(Acceleration)
	Weight       = Force
	Pressure     = Force.Div(Area)
	Stress       = Pressure
	Tension      = Force.Div(Length)
	Energy       = Force.Mul(Length)
	Work         = Energy
	Heat         = Energy
	Power        = Energy.Div(Time)
	Density      = Mass.Div(Volume)

	SpecificVolume    = Density.PowInt(-1)
	MassConcentration = SpecificVolume
	SurfaceDensity    = Mass.Div(Area)
	Viscosity         = Pressure.Mul(Time)
	Frequency         = Time.PowInt(-1)
	Radioactivity     = Frequency

	CurrentDensity        = ElectricCurrent.Div(Area)
	MagneticFieldStrength = ElectricCurrent.Div(Length)
	Charge                = ElectricCurrent.Mul(Time)
	ElectricPotential     = Power.Div(ElectricCurrent)
	Capacitance           = Charge.Div(ElectricPotential)
	Resistance            = ElectricPotential.Div(ElectricCurrent)
	Impedance             = Resistance
	Reactance             = Resistance
	Conductance           = Resistance.PowInt(-1)
	MagneticFlux          = ElectricPotential.Mul(Time)
	MagneticFluxDensity   = MagneticFlux.Div(Area)
	Inductance            = MagneticFlux.Div(ElectricCurrent)

	Illuminance       = LuminousFlux.Div(Area)
	AbsorbedDose      = Energy.Div(Mass)
	EquivalentDose    = AbsorbedDose
	Concentration     = AmountOfSubstance.Div(Volume)
	CatalyticActivity = AmountOfSubstance.Div(Time)
)
