package abstractfactory

// FordFactory creates Ford cars and engines.
type FordFactory struct{}

func (FordFactory) Brand() Brand { return BrandFord }

func (FordFactory) CreateCar() Car { return &fordCar{name: "Ford"} }

func (FordFactory) CreateEngine() Engine { return &fordEngine{maxSpeed: 220} }

type fordCar struct {
	name string
}

func (c *fordCar) Name() string   { return c.name }
func (c *fordCar) Brand() Brand   { return BrandFord }
func (c *fordCar) String() string { return "Car " + c.name }

func (c *fordCar) MaxSpeed(engine Engine) int { return engine.MaxSpeed() }

type fordEngine struct {
	maxSpeed int
}

func (e *fordEngine) Brand() Brand  { return BrandFord }
func (e *fordEngine) MaxSpeed() int { return e.maxSpeed }
