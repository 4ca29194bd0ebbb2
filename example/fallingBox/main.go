package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates the test scene with a static ground and a falling box
func SetupScene() (*plume.World, *actor.RigidBody) {
	world := plume.NewWorld()
	world.Gravity = mgl64.Vec2{0, -9.81}

	// Wide static ground at y=0
	ground := actor.NewRigidBody(
		mgl64.Vec2{0, 0},
		actor.NewBox(mgl64.Vec2{10, 0.5}),
		actor.BodyTypeStatic,
		0.0,
	)
	world.AddBody(ground)

	// Unit box dropped from above
	box := actor.NewRigidBody(
		mgl64.Vec2{0, 5},
		actor.NewBox(mgl64.Vec2{0.5, 0.5}),
		actor.BodyTypeDynamic,
		1.0,
	)
	world.AddBody(box)

	return world, box
}

func main() {
	world, box := SetupScene()

	bounces := 0
	world.Events.Subscribe(plume.COLLISION_ENTER, func(event plume.Event) {
		bounces++
		fmt.Printf("💥 bounce %d at y=%.3f, velocity=%.3f\n", bounces, box.Position.Y(), box.Velocity.Y())
	})

	dt := 1.0 / 60.0
	for i := 0; i <= 240; i++ {
		world.Step(dt)

		if i%30 == 0 {
			fmt.Printf("t=%.2fs position=(%.3f, %.3f) velocity=(%.3f, %.3f)\n",
				float64(i)*dt, box.Position.X(), box.Position.Y(), box.Velocity.X(), box.Velocity.Y())
		}
	}

	fmt.Printf("Simulation done: %d bounces, final height %.3f\n", bounces, box.Position.Y())
}
