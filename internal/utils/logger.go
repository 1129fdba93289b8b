package utils

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	logMutex    sync.Mutex
	logFilePath string
)

// InitLogger points the audit log at path. An empty path disables it.
func InitLogger(path string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logFilePath = path
}

func LoggingEnabled() bool {
	logMutex.Lock()
	defer logMutex.Unlock()
	return logFilePath != ""
}

func LogAction(intakeID string, actionType string, details string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFilePath == "" {
		return nil
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("[%s] INTAKE:%s | ACTION:%s | DETAILS:%s\n", timestamp, intakeID, actionType, details)

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(logEntry)
	return err
}

func LogSessionStart(strict bool) error {
	return LogAction("SYSTEM", "SESSION_START", fmt.Sprintf("Strict: %t", strict))
}

func LogSessionEnd(total int) error {
	return LogAction("SYSTEM", "SESSION_END", fmt.Sprintf("Intakes evaluated: %d", total))
}

func LogIntakeStarted(intakeID string) error {
	return LogAction(intakeID, "INTAKE_STARTED", "New patient record")
}

func LogLabReportMissing(intakeID string, lab string) error {
	return LogAction(intakeID, "LAB_REPORT_MISSING", fmt.Sprintf("Lab: %s | Recorded as Unknown", lab))
}

func LogInputRejected(intakeID string, field string) error {
	return LogAction(intakeID, "INPUT_REJECTED", fmt.Sprintf("Field: %s", field))
}

func LogRecordRejected(intakeID string, reason string) error {
	return LogAction(intakeID, "RECORD_REJECTED", reason)
}

func LogVerdict(intakeID string, eligible bool, rule string) error {
	if eligible {
		return LogAction(intakeID, "VERDICT", "Eligible")
	}
	return LogAction(intakeID, "VERDICT", fmt.Sprintf("Eliminated | Rule: %s", rule))
}

func LogError(intakeID string, errorType string, errorMsg string) error {
	return LogAction(intakeID, fmt.Sprintf("ERROR_%s", errorType), errorMsg)
}
