package upstream

import (
	"context"
	"net/http"
)

type SavePolicyRequest struct {
	LeaveType             string  `json:"leaveType"`
	Allowance             float64 `json:"allowance"`
	CarryForwardLimit     float64 `json:"carryForwardLimit"`
	MinDaysBeforeRequest  int     `json:"minDaysBeforeRequest"`
	RequiresDocumentation bool    `json:"requiresDocumentation"`
	RequiresApproval      bool    `json:"requiresApproval"`
	Description           string  `json:"description,omitempty"`
}

type PatchPolicyRequest struct {
	Allowance             *float64 `json:"allowance,omitempty"`
	CarryForwardLimit     *float64 `json:"carryForwardLimit,omitempty"`
	MinDaysBeforeRequest  *int     `json:"minDaysBeforeRequest,omitempty"`
	RequiresDocumentation *bool    `json:"requiresDocumentation,omitempty"`
	RequiresApproval      *bool    `json:"requiresApproval,omitempty"`
	Description           *string  `json:"description,omitempty"`
	Active                *bool    `json:"active,omitempty"`
}

// PolicyAPI covers per-leave-type policy configuration.
type PolicyAPI interface {
	Policies(ctx context.Context) ([]LeavePolicy, error)
	PolicyByID(ctx context.Context, id string) (LeavePolicy, error)
	CreatePolicy(ctx context.Context, req SavePolicyRequest) (LeavePolicy, error)
	PatchPolicy(ctx context.Context, id string, req PatchPolicyRequest) (LeavePolicy, error)
	UpdatePolicy(ctx context.Context, id string, req SavePolicyRequest) (LeavePolicy, error)
}

func (c *Client) Policies(ctx context.Context) ([]LeavePolicy, error) {
	var out []LeavePolicy
	err := c.do(ctx, http.MethodGet, "/leave-policies", nil, nil, &out)
	return out, err
}

func (c *Client) PolicyByID(ctx context.Context, id string) (LeavePolicy, error) {
	var out LeavePolicy
	err := c.do(ctx, http.MethodGet, "/leave-policies/"+id, nil, nil, &out)
	return out, err
}

func (c *Client) CreatePolicy(ctx context.Context, req SavePolicyRequest) (LeavePolicy, error) {
	var out LeavePolicy
	err := c.do(ctx, http.MethodPost, "/leave-policies", nil, req, &out)
	return out, err
}

func (c *Client) PatchPolicy(ctx context.Context, id string, req PatchPolicyRequest) (LeavePolicy, error) {
	var out LeavePolicy
	err := c.do(ctx, http.MethodPatch, "/leave-policies/"+id, nil, req, &out)
	return out, err
}

func (c *Client) UpdatePolicy(ctx context.Context, id string, req SavePolicyRequest) (LeavePolicy, error) {
	var out LeavePolicy
	err := c.do(ctx, http.MethodPut, "/leave-policies/"+id, nil, req, &out)
	return out, err
}
