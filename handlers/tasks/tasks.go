package tasks

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

// taskDisplayOrder puts open tasks first, then nearest due date, then newest.
const taskDisplayOrder = "CASE WHEN status = 'OPEN' THEN 0 ELSE 1 END, due_at IS NULL, due_at asc, created_at desc"

type createTaskInput struct {
	Title string  `json:"title"`
	Type  *string `json:"type"`
	DueAt *string `json:"dueAt"`
}

type updateTaskInput struct {
	Status string `json:"status"`
}

// CreateTask attaches a follow-up task to an existing lead.
func CreateTask(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input createTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task title is required"})
		return
	}

	task := models.Task{
		LeadID: lead.ID,
		Title:  strings.TrimSpace(input.Title),
		Type:   models.TaskTypeOther,
		Status: models.TaskStatusOpen,
	}

	if input.Type != nil {
		if !models.ValidTaskType(*input.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task type"})
			return
		}
		task.Type = *input.Type
	}

	if input.DueAt != nil && *input.DueAt != "" {
		due, err := time.Parse(time.RFC3339, *input.DueAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected RFC 3339"})
			return
		}
		task.DueAt = &due
	}

	if err := utils.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks lists a lead's tasks in display order.
func GetTasks(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var tasks []models.Task
	if err := utils.DB.Where("lead_id = ?", lead.ID).Order(taskDisplayOrder).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask sets a task's status. The data layer allows any transition; the
// UI simply doesn't expose reopening.
func UpdateTask(c *gin.Context) {
	var task models.Task
	if err := utils.DB.First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input updateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if !models.ValidTaskStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
		return
	}

	if err := utils.DB.Model(&task).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	task.Status = input.Status

	c.JSON(http.StatusOK, task)
}
