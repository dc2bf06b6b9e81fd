package ui

import "time"

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimFeed
	AnimClean
	AnimPlay
	AnimSleep
	AnimWater
	AnimBuy
	AnimGame
)

// Animation holds the current animation state
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
}

// AnimationFrames contains ASCII art frames for each animation type
var AnimationFrames = map[AnimationType][]string{
	AnimFeed: {
		`
   🍉
     \
      🦛
`,
		`

   🍉→🦛

`,
		`

     🦛
   *nom*
`,
		`

     🦛
   *munch*
`,
	},
	AnimClean: {
		`
  🧽        🦛
`,
		`
      🧽    🦛
`,
		`
          🫧🦛🫧
`,
		`
         ✨ 🦛 ✨
          *sparkle*
`,
	},
	AnimPlay: {
		`
  🎾        🦛
`,
		`
     🎾     🦛
`,
		`
        🎾  🦛
`,
		`
     🎾     🦛
              *boing*
`,
		`
  🎾        🦛
              *catch!*
`,
	},
	AnimSleep: {
		`
     🦛
`,
		`
     🦛
      z
`,
		`
     🦛
     z
      z
`,
		`
     🦛
    z
     z
      z
`,
	},
	AnimWater: {
		`
  💧        🦛
`,
		`
      💧    🦛
`,
		`
          💧🦛
`,
		`
           🦛
         *gulp*
`,
	},
	AnimBuy: {
		`
  🛍️        🦛
`,
		`
       🛍️→ 🦛
`,
		`
         ✨ 🦛 ✨
          *new look!*
`,
	},
	AnimGame: {
		`
  🎲        🦛
`,
		`
     🎲     🦛
`,
		`
        🎲  🦛
          *yay!*
`,
		`
         🪙 🦛 🪙
`,
	},
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 200 * time.Millisecond

// GetAnimationFrame returns the frame to draw. Past the end it holds on the
// last frame until the model clears the animation.
func GetAnimationFrame(anim Animation) string {
	frames := AnimationFrames[anim.Type]
	if len(frames) == 0 {
		return ""
	}
	return frames[min(max(anim.Frame, 0), len(frames)-1)]
}

// IsAnimationComplete reports whether every frame has been shown.
func IsAnimationComplete(anim Animation) bool {
	return anim.Frame >= AnimationTotalFrames(anim.Type)
}

func AnimationTotalFrames(animType AnimationType) int {
	return len(AnimationFrames[animType])
}
