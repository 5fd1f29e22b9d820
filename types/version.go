package types

// Version is the launcher version. The bundled engine ships in
// lockstep with the launcher, so bundled resolutions report this
// version as the engine version.
const Version = "0.4.2"
