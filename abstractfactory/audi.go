package abstractfactory

// AudiFactory creates Audi cars and engines. Audi cars carry a body style.
type AudiFactory struct{}

func (AudiFactory) Brand() Brand { return BrandAudi }

func (AudiFactory) CreateCar() Car { return &audiCar{name: "Audi", bodyStyle: "sports car"} }

func (AudiFactory) CreateEngine() Engine { return &audiEngine{maxSpeed: 250} }

type audiCar struct {
	name      string
	bodyStyle string
}

func (c *audiCar) Name() string      { return c.name }
func (c *audiCar) Brand() Brand      { return BrandAudi }
func (c *audiCar) BodyStyle() string { return c.bodyStyle }

func (c *audiCar) String() string {
	return "Car " + c.name + " with body " + c.bodyStyle
}

func (c *audiCar) MaxSpeed(engine Engine) int { return engine.MaxSpeed() }

type audiEngine struct {
	maxSpeed int
}

func (e *audiEngine) Brand() Brand  { return BrandAudi }
func (e *audiEngine) MaxSpeed() int { return e.maxSpeed }
