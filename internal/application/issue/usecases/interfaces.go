package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error)
}

type UpdateIssueExecutor interface {
	Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error)
}

type AssignIssueExecutor interface {
	Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueWithRelationsDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) ([]*dto.IssueWithRelationsDTO, error)
}

type ListUnassignedIssuesExecutor interface {
	Execute(ctx context.Context) ([]*dto.IssueWithRelationsDTO, error)
}

type CreateCommentExecutor interface {
	Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}
