package policy

import "leavedesk/internal/upstream"

type SavePolicyForm struct {
	LeaveType             string  `json:"leaveType" binding:"required"`
	Allowance             float64 `json:"allowance" binding:"required,gte=0"`
	CarryForwardLimit     float64 `json:"carryForwardLimit" binding:"gte=0"`
	MinDaysBeforeRequest  int     `json:"minDaysBeforeRequest" binding:"gte=0"`
	RequiresDocumentation bool    `json:"requiresDocumentation"`
	RequiresApproval      bool    `json:"requiresApproval"`
	Description           string  `json:"description"`
}

type PatchPolicyForm struct {
	Allowance             *float64 `json:"allowance" binding:"omitempty,gte=0"`
	CarryForwardLimit     *float64 `json:"carryForwardLimit" binding:"omitempty,gte=0"`
	MinDaysBeforeRequest  *int     `json:"minDaysBeforeRequest" binding:"omitempty,gte=0"`
	RequiresDocumentation *bool    `json:"requiresDocumentation"`
	RequiresApproval      *bool    `json:"requiresApproval"`
	Description           *string  `json:"description"`
	Active                *bool    `json:"active"`
}

// PolicyResponse carries the display name so admin tables do not keep
// their own leave-type map.
type PolicyResponse struct {
	upstream.LeavePolicy
	TypeName string `json:"typeName"`
}
