package build

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/btcsuite/btclog/v2"
)

// NewSubLogger constructs a new subsystem logger. If a sublogger constructor
// is provided, it is used to derive the logger from the application's primary
// log backend. Otherwise logging for the subsystem is disabled until the
// application installs its own logger via the package's UseLogger function.
func NewSubLogger(subsystem string,
	genSubLogger func(string) btclog.Logger) btclog.Logger {

	if genSubLogger != nil {
		return genSubLogger(subsystem)
	}

	return btclog.Disabled
}

// SubLoggers is a type that holds a map of subsystem loggers keyed by their
// subsystem name.
type SubLoggers map[string]btclog.Logger

// LeveledSubLogger provides the ability to retrieve the subsystem loggers of
// a logger and set their log levels individually or all at once.
type LeveledSubLogger interface {
	// SubLoggers returns the map of all registered subsystem loggers.
	SubLoggers() SubLoggers

	// SupportedSubsystems returns a slice of strings containing the names
	// of the supported subsystems. Should ideally correspond to the keys
	// of the subsystem logger map and be sorted.
	SupportedSubsystems() []string

	// SetLogLevel assigns an individual subsystem logger a new log level.
	SetLogLevel(subsystemID string, logLevel string)

	// SetLogLevels assigns all subsystem loggers the same new log level.
	SetLogLevels(logLevel string)
}

// SubLoggerManager tracks the subsystem loggers of an application,
// implementing LeveledSubLogger so debug level strings can address them
// individually or all at once.
type SubLoggerManager struct {
	mtx     sync.Mutex
	loggers SubLoggers

	genSubLogger func(string) btclog.Logger
}

// A compile time check to ensure SubLoggerManager implements the
// LeveledSubLogger interface.
var _ LeveledSubLogger = (*SubLoggerManager)(nil)

// NewSubLoggerManager creates a manager that derives subsystem loggers
// through genSubLogger.
func NewSubLoggerManager(
	genSubLogger func(string) btclog.Logger) *SubLoggerManager {

	return &SubLoggerManager{
		loggers:      make(SubLoggers),
		genSubLogger: genSubLogger,
	}
}

// Register derives the logger for a subsystem, hands it to the package's
// install hook and tracks it for level control.
func (m *SubLoggerManager) Register(subsystem string,
	install func(btclog.Logger)) {

	logger := NewSubLogger(subsystem, m.genSubLogger)

	m.mtx.Lock()
	m.loggers[subsystem] = logger
	m.mtx.Unlock()

	install(logger)
}

// SubLoggers returns the map of all registered subsystem loggers.
func (m *SubLoggerManager) SubLoggers() SubLoggers {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	loggers := make(SubLoggers, len(m.loggers))
	for subsystem, logger := range m.loggers {
		loggers[subsystem] = logger
	}

	return loggers
}

// SupportedSubsystems returns the sorted names of the registered subsystems.
func (m *SubLoggerManager) SupportedSubsystems() []string {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	subsystems := make([]string, 0, len(m.loggers))
	for subsystem := range m.loggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)

	return subsystems
}

// SetLogLevel assigns an individual subsystem logger a new log level.
// Unknown subsystems and unparsable levels are ignored; validation belongs
// to ParseAndSetDebugLevels.
func (m *SubLoggerManager) SetLogLevel(subsystemID string, logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if logger, ok := m.loggers[subsystemID]; ok {
		logger.SetLevel(level)
	}
}

// SetLogLevels assigns all registered subsystem loggers the same new log
// level.
func (m *SubLoggerManager) SetLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	for _, logger := range m.loggers {
		logger.SetLevel(level)
	}
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly on the given logger. An appropriate error is
// returned if anything is invalid.
func ParseAndSetDebugLevels(level string, logger LeveledSubLogger) error {
	// Split at the delimiter.
	levels := strings.Split(level, ",")
	if len(levels) == 0 {
		return fmt.Errorf("invalid log level: %v", level)
	}

	// If the first entry has no =, treat it as the log level for all
	// subsystems.
	globalLevel := levels[0]
	if !strings.Contains(globalLevel, "=") {
		if _, ok := btclog.LevelFromString(globalLevel); !ok {
			return fmt.Errorf("the specified debug level [%v] "+
				"is invalid", globalLevel)
		}

		// Change the logging level for all subsystems.
		logger.SetLogLevels(globalLevel)

		// The rest will target specific subsystems.
		levels = levels[1:]
	}

	// Go through the subsystem/level pairs while detecting issues and
	// update the log levels accordingly.
	for _, logLevelPair := range levels {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level has an "+
				"invalid format [%v] -- use "+
				"subsystem1=level1,subsystem2=level2",
				logLevelPair)
		}
		subsysID, logLevel := fields[0], fields[1]

		// Validate the subsystem.
		if _, exists := logger.SubLoggers()[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is "+
				"invalid -- supported subsystems are %v",
				subsysID, logger.SupportedSubsystems())
		}

		// Validate the log level.
		if _, ok := btclog.LevelFromString(logLevel); !ok {
			return fmt.Errorf("the specified debug level [%v] "+
				"is invalid", logLevel)
		}

		logger.SetLogLevel(subsysID, logLevel)
	}

	return nil
}
