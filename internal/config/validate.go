package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Validate checks that the configuration describes a playable field.
// Every problem found is reported, joined into a single error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)

	check(c.Paddle.Width > 0 && c.Paddle.Height > 0,
		"paddle: size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Width <= c.Field.Width,
		"paddle: width %v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	check(c.Paddle.Speed >= 0, "paddle: speed must not be negative, got %v", c.Paddle.Speed)
	check(c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Field.Height,
		"paddle: bottom_offset %v must be inside the field", c.Paddle.BottomOffset)

	check(c.Ball.Radius > 0, "ball: radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.SpeedY > 0, "ball: speed_y must be positive, got %v", c.Ball.SpeedY)
	// The paddle test needs one tick where the ball touches the paddle with its
	// center still above the top edge.
	check(c.Physics.LegacyPaddleHit || c.Ball.SpeedY < c.Ball.Radius,
		"ball: speed_y %v must be below radius %v unless physics.legacy_paddle_hit is set",
		c.Ball.SpeedY, c.Ball.Radius)
	check(c.Ball.TrailLength >= 0, "ball: trail_length must not be negative, got %d", c.Ball.TrailLength)
	check(c.Ball.SpawnOffset > 0 && c.Ball.SpawnOffset < c.Field.Height,
		"ball: spawn_offset %v must be inside the field", c.Ball.SpawnOffset)

	check(c.Bricks.Rows > 0 && c.Bricks.Cols > 0,
		"bricks: grid must have at least one cell, got %dx%d", c.Bricks.Rows, c.Bricks.Cols)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0,
		"bricks: size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(len(c.Bricks.Palette) > 0, "bricks: palette must not be empty")

	check(c.Gameplay.Lives > 0, "gameplay: lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.BrickPoints >= 0, "gameplay: brick_points must not be negative, got %d", c.Gameplay.BrickPoints)

	check(c.Particles.Count >= 0, "particles: count must not be negative, got %d", c.Particles.Count)
	check(c.Particles.LifeMin > 0 && c.Particles.LifeMin <= c.Particles.LifeMax,
		"particles: need 0 < life_min <= life_max, got %d..%d", c.Particles.LifeMin, c.Particles.LifeMax)
	check(c.Particles.VelocityRange >= 0,
		"particles: velocity_range must not be negative, got %v", c.Particles.VelocityRange)

	checkColor := func(field, hex string) {
		_, err := colorful.Hex(hex)
		check(err == nil, "%s: invalid color %q", field, hex)
	}
	checkColor("paddle.color", c.Paddle.Color)
	checkColor("ball.color", c.Ball.Color)
	for i, hex := range c.Bricks.Palette {
		checkColor(fmt.Sprintf("bricks.palette[%d]", i), hex)
	}

	return errors.Join(errs...)
}
