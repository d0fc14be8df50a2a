package scene

// Window defaults.
const (
	WindowWidth  = 1000
	WindowHeight = 700
	WindowTitle  = "Neon City 3D"
	MSAASamples  = 4
)

// Density (requested building count) control.
const (
	DefaultDensity = 50
	MinDensity     = 10
	MaxDensity     = 100
	DensityStep    = 10
)

// Projection.
const (
	FieldOfView = 45.0 // degrees
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// Orbit camera.
// Distance tracks the map radius so the whole city stays in frame.
const (
	DefaultRotSpeed = 0.005 // radians per frame
	MapScale        = 4.0   // map side = sqrt(density) * MapScale
	CamDistFactor   = 1.5
	CamDistPad      = 5.0
	CamHeightFactor = 0.5
	FogStartFactor  = 0.5
	FogEndFactor    = 2.5
)

// Per-frame animation.
const (
	DefaultFlickers  = 2 // buildings that flicker a window each frame
	FireworkCount    = 20
	MaxParticles     = 4000
	ParticleGravity  = 0.01
	ParticleSize     = 0.1
	ParticleMinSpeed = 0.1
	ParticleMaxSpeed = 0.3
	ParticleMinLift  = 0.1
	ParticleMaxLift  = 0.5
	ParticleMinDecay = 0.03
	ParticleMaxDecay = 0.06
)

// HUD text layout, in screen pixels.
const (
	HUDLeft       = 20
	HUDTop        = 20
	HUDLineHeight = 30
)

// SeedEnv overrides the clock seed when the settings file leaves it at zero.
const SeedEnv = "NEONCITY_SEED"
