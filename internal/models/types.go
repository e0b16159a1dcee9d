package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList is an ordered list of tags stored as a JSON-encoded text column,
// so containment filters can run as plain substring matches on any driver.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

func (StringList) GormDataType() string { return "text" }

// Role controls which HTTP methods a user may invoke.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(s), nil
	}
	return "", errors.New("unknown role: " + s)
}

type TaskType string

const (
	TaskTypeAssignment TaskType = "assignment"
	TaskTypeProject    TaskType = "project"
	TaskTypeThesis     TaskType = "thesis"
	TaskTypeReview     TaskType = "review"
	TaskTypeOther      TaskType = "other"
)

type TaskStatus string

const (
	TaskStatusUnassigned TaskStatus = "unassigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)
