package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Open creates the window and sets the frame rate. Split from Loop because
// model loading needs the OpenGL context and must run between the two.
// The window is resizable; raylib recomputes the viewport and screen size on
// resize, no state is kept here.
func Open(width, height, fps int32, title string) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(fps)
}

// Close destroys the window and the OpenGL context.
func Close() {
	rl.CloseWindow()
}

// Loop runs the main loop until the window closes. Each frame it calls update
// (simulation, camera), then clears the screen and calls draw.
func Loop(update, draw func()) {
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
