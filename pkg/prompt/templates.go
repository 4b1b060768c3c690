// Package prompt composes the system and user messages for the two model
// calls: instruction generation (streamed) and HTML compilation (one-shot).
// Stateless — all state comes from parameters.
package prompt

// CanvasID is the id of the single drawing canvas the generated document
// must contain. Part of the fixed wire contract with the playback host.
const CanvasID = "animationCanvas"

// EntryPoints are the zero-argument globals the generated document must
// expose. The playback host invokes them directly, with a window message as
// fallback. Changing these names breaks the control relay.
var EntryPoints = []string{"stepForward", "stepBackward", "resetAnimation", "playAnimation"}

// instructionsSystem asks the model for the structured instruction document.
// Millisecond units are stated explicitly so guide timestamps and animation
// durations stay consistent.
const instructionsSystem = `You are an animation director. Given a description of a concept, produce a JSON object describing an animated canvas visualization that explains it.

Respond with a single JSON object and nothing else — no markdown fences, no commentary. The object has these top-level fields:

- "scene": {"title", "description", "canvas": {"width", "height", "background"}}
- "objects": array of drawable entities, each {"id", "type", "properties": {...}} with positions, sizes and colors in properties
- "animations": array of timed transforms, each {"id", "objectId", "type", "duration", "delay", "easing", "from": {...}, "to": {...}}
- "timeline": ordered array of {"time", "action", "animationId"}
- "controls": {"playPause", "reset", "speedControl", "stepForward", "stepBackward"} booleans
- "narrativeGuide": {"introduction", "steps": [{"timestamp", "text", "highlight"}], "conclusion"}

All times are milliseconds. narrativeGuide step timestamps must be non-decreasing and consistent with animation durations and delays. Emit the narrativeGuide field early in the object so narration is available before the full description completes.`

// compilerSystem asks the model for the final self-contained document. The
// entry point names and canvas id are the wire contract the playback host
// relies on.
const compilerSystem = `You are an expert front-end engineer. Produce one complete, self-contained HTML document that renders an animated <canvas> visualization. Requirements:

- A full document: <!DOCTYPE html>, <html>, <head>, <body>, all opened and closed.
- Exactly one <canvas id="animationCanvas"> used for all drawing.
- A visible control region below the canvas with play/pause, reset and speed controls.
- Animation state in globals: isPlaying, speed, currentFrame, totalFrames.
- Four global functions callable with no arguments: stepForward(), stepBackward(), resetAnimation(), playAnimation().
- A window "message" event listener that reacts to {type: "stepForward"} and {type: "stepBackward"} by calling the matching function.
- No external resources: no CDN scripts, stylesheets, fonts or images. Everything inline.
- If narration steps are provided, render the current step's text as a subtitle synchronized to the animation clock (milliseconds).

Respond with the HTML document only. No markdown fences, no explanation.`

// compileFromInstructionsTask frames a compile driven by a structured
// instruction document.
const compileFromInstructionsTask = `Build the animation described by these instructions. Follow the scene, objects, animations and timeline exactly; treat all durations, delays and timestamps as milliseconds.

## Instructions
%s`

// compileFromPromptTask frames a best-effort compile when only the raw user
// prompt is available.
const compileFromPromptTask = `Design and build an animated canvas visualization for the following request. Choose sensible objects, motion and pacing yourself.

## Request
%s`

// narrationSection is appended when a narrative guide accompanies the
// compile request.
const narrationSection = `

## Narration
Synchronize these narration steps as subtitles (timestamps in milliseconds):
%s`
