package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sbilibin2017/goodservices/internal/models"
)

const (
	requestTitleMax        = 80
	requestDescriptionMax  = 300
	responseTitleMax       = 50
	responseDescriptionMax = 500
	maxFiles               = 10
	maxPageSize            = 100
	maxPage                = math.MaxInt / maxPageSize
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		if min <= 1 {
			return validationError(field, fmt.Sprintf("must be at most %d characters", max))
		}
		return validationError(field, fmt.Sprintf("must be %d-%d characters", min, max))
	}
	return nil
}

func checkTitle(field, title string, max int) error {
	if strings.TrimSpace(title) == "" {
		return validationError(field, "must not be empty")
	}
	return checkLength(field, title, 1, max)
}

func checkFiles(files models.FileList) error {
	if len(files) > maxFiles {
		return validationError("files", fmt.Sprintf("must contain at most %d entries", maxFiles))
	}
	for _, f := range files {
		if strings.TrimSpace(f) == "" {
			return validationError("files", "must not contain empty entries")
		}
	}
	return nil
}

func checkPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return validationError("phone", "must be an 11 digit mobile number")
	}
	return nil
}

// checkPassword requires at least 6 characters, at least 2 digits and mixed-case letters when letters are present.
func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return validationError("password", "must be at least 6 characters")
	}
	var digits int
	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if digits < 2 {
		return validationError("password", "must contain at least 2 digits")
	}
	if hasUpper != hasLower {
		return validationError("password", "must not be all upper or all lower case")
	}
	return nil
}

// checkPage validates 1-indexed pagination.
func checkPage(page, size int) error {
	if page < 1 || page > maxPage {
		return validationError("page", fmt.Sprintf("must be between 1 and %d", maxPage))
	}
	if size < 1 || size > maxPageSize {
		return validationError("size", fmt.Sprintf("must be between 1 and %d", maxPageSize))
	}
	return nil
}
