// Package plotline renders short, linear narrative scatter plots with
// [Ebitengine]: a fixed dataset presented as a sequence of scenes, each
// pairing a highlight rule with annotation callouts, navigated with
// previous/next controls and an exploratory category filter on the final
// scene.
//
// # Quick start
//
// The built-in story plots vehicle horsepower against fuel economy:
//
//	chart := plotline.NewChart(plotline.Cars(), plotline.Rect{X: 64, Y: 48, Width: 560, Height: 380})
//	story := plotline.CarsStory(chart)
//	stage := plotline.NewStage(story, 720, 560)
//	if err := plotline.Run(stage, plotline.RunConfig{Title: "plotline"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Scenes and state
//
// A [Story] is a bounded, reversible state machine over a fixed [Scene]
// sequence; its only state is the scene index and the current filter value.
// Entering a scene clears transient decorations, retargets every mark for
// the scene's highlight predicate, and restores whichever fixtures the
// scene declares. Renders are idempotent, so re-entering a scene is always
// safe.
//
// # Marks and transitions
//
// The [Chart] keeps one persistent [Mark] per record, keyed by name. Scene
// changes never recreate marks; they retarget them, and each mark tweens
// (via [gween]) toward its declarative [VisualState]. That identity is what
// makes emphasis changes animate smoothly instead of flickering.
//
// # Headless use
//
// Stages run without a window too: tests drive them with injected pointer
// events ([Stage.InjectClick]), scripts sequence whole walkthroughs
// ([LoadStoryScript]), and [WriteSVG] exports any scene's target visual
// state as a standalone document.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package plotline
