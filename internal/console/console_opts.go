package console

type ConsoleOpt func(*Console)

// WithStartRoom makes id the default answer to the starting room prompt.
func WithStartRoom(id int) ConsoleOpt {
	return func(c *Console) {
		c.startRoom = id
	}
}
