package abstractfactory

import "strconv"

// Client uses one family through the Car and Engine interfaces only.
type Client struct {
	car    Car
	engine Engine
}

// NewClient builds the car and the engine from factory.
func NewClient(factory CarFactory) *Client {
	return &Client{
		car:    factory.CreateCar(),
		engine: factory.CreateEngine(),
	}
}

// RunMaxSpeed reports the top speed of the car with its engine.
func (c *Client) RunMaxSpeed() int { return c.car.MaxSpeed(c.engine) }

// Compatible reports whether the car and engine share a brand.
func (c *Client) Compatible() bool { return c.car.Brand() == c.engine.Brand() }

// BodyStyle returns the car body style, or "" when the car has none.
func (c *Client) BodyStyle() string {
	if bs, ok := c.car.(BodyStyler); ok {
		return bs.BodyStyle()
	}
	return ""
}

func (c *Client) String() string { return c.car.String() }

// Report renders the one-line console summary, e.g. "Max speed of Car Ford is 220".
func (c *Client) Report() string {
	return "Max speed of " + c.String() + " is " + strconv.Itoa(c.RunMaxSpeed())
}
