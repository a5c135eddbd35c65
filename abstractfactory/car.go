package abstractfactory

// Brand identifies a car family. A factory never mixes brands.
type Brand string

const (
	BrandFord Brand = "Ford"
	BrandAudi Brand = "Audi"
)

// Engine is the second product of every family.
type Engine interface {
	Brand() Brand
	MaxSpeed() int
}

// Car is the first product of every family.
type Car interface {
	Name() string
	Brand() Brand

	// MaxSpeed reports the top speed of the car fitted with engine.
	MaxSpeed(engine Engine) int

	String() string
}

// BodyStyler is implemented by cars that carry a body style.
type BodyStyler interface {
	BodyStyle() string
}

// CarFactory creates a matched car and engine.
type CarFactory interface {
	Brand() Brand
	CreateCar() Car
	CreateEngine() Engine
}
