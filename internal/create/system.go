package create

import "github.com/conn-castle/create-next-stack/internal/materialize"

// System is the filesystem surface the orchestrator needs; it is shared with materialize.
type System = materialize.System

// RealSystem implements System using the OS filesystem.
type RealSystem = materialize.RealSystem
