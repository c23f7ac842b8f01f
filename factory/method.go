package factory

// CarFactory is the factory-method capability: each concrete factory builds
// exactly one kind of Car. Use it when the variant decision is made once,
// by choosing the factory, rather than per call by a selector.
type CarFactory interface {
	// NewCar constructs this factory's Car variant.
	NewCar() Car
}

// SedanFactory builds Sedans.
type SedanFactory struct{}

// NewCar returns a Sedan.
func (SedanFactory) NewCar() Car { return Sedan{} }

// SUVFactory builds SUVs.
type SUVFactory struct{}

// NewCar returns an SUV.
func (SUVFactory) NewCar() Car { return SUV{} }
