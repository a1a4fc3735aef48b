package usecases

import (
	"context"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

type CreateCommentCommand struct {
	IssueID    uint
	UserID     uint
	Comment    string
	IsInternal bool
}

type CreateCommentUseCase struct {
	issueRepo   issue.Repository
	commentRepo issue.CommentRepository
	userRepo    user.Repository
	text        richtext.Service
	logger      logger.Interface
}

func NewCreateCommentUseCase(
	issueRepo issue.Repository,
	commentRepo issue.CommentRepository,
	userRepo user.Repository,
	text richtext.Service,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		text:        text,
		logger:      logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing create comment use case",
		"issue_id", cmd.IssueID,
		"user_id", cmd.UserID,
		"is_internal", cmd.IsInternal)

	exists, err := uc.issueRepo.Exists(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to check issue", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to create comment")
	}
	if !exists {
		return nil, errors.NewNotFoundError("Issue not found")
	}

	author, err := uc.userRepo.Exists(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check comment author", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to create comment")
	}
	if !author {
		return nil, errors.NewFieldError("userId", fmt.Sprintf("user %d does not exist", cmd.UserID))
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.UserID, uc.text.Clean(cmd.Comment), cmd.IsInternal)
	if err != nil {
		return nil, errors.NewFieldError("comment", err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create comment", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to create comment")
	}

	uc.logger.Infow("comment added successfully",
		"issue_id", cmd.IssueID,
		"comment_id", comment.ID())

	return renderComment(uc.text, uc.logger, comment), nil
}

type ListCommentsQuery struct {
	IssueID uint
}

// ListCommentsUseCase returns an issue's comments oldest first. An unknown
// issue simply has no comments.
type ListCommentsUseCase struct {
	commentRepo issue.CommentRepository
	text        richtext.Service
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo issue.CommentRepository, text richtext.Service, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		text:        text,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	comments, err := uc.commentRepo.ListByIssueID(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "issue_id", query.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, renderComment(uc.text, uc.logger, c))
	}
	return result, nil
}

// renderComment falls back to an empty commentHtml when markdown conversion
// fails; the plain comment is still returned.
func renderComment(text richtext.Service, log logger.Interface, c *issue.Comment) *dto.CommentDTO {
	html, err := text.RenderMarkdown(c.Comment())
	if err != nil {
		log.Warnw("failed to render comment markdown", "comment_id", c.ID(), "error", err)
		html = ""
	}
	return dto.ToCommentDTO(c, html)
}
