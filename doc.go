// Package drop is a small arcade game for [Ebitengine]: the player moves a
// bucket along the bottom of the screen to catch drops falling from the top.
//
// # Quick start
//
// [Game] implements [ebiten.Game]. Build one from a [Config] and the
// services it draws on, load its assets with [Game.Create], and hand it to
// Ebitengine:
//
//	cfg := drop.DefaultConfig()
//	assets := os.DirFS("assets")
//	game, err := drop.NewGame(cfg, drop.Services{
//		Images: drop.NewFSImageLoader(assets),
//		Audio:  drop.NewEbitenAudio(assets, cfg.Audio.SampleRate, nil),
//		Input:  drop.NewEbitenInput(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := game.Create(); err != nil {
//		log.Fatal(err)
//	}
//	defer game.Dispose()
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// # World
//
// Gameplay happens in a fixed world of 8×5 units with the origin at the
// bottom-left and Y pointing up. A [Viewport] fits the world into the window,
// keeping its aspect ratio and adding bars where the window shape differs.
//
// Every frame the game reads input, moves the bucket and drops, resolves
// catches, spawns a new drop once per second, and draws the result through
// a [Renderer].
//
// # Testing without a window
//
// [ScriptedInput] stands in for the keyboard and pointer, and [Game.Step]
// runs one frame of input and logic. [LoadScript] replays a YAML or JSON
// sequence of inputs and screenshots on a live game.
//
// [Ebitengine]: https://ebitengine.org
package drop
