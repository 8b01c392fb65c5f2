package services

import "resume-analyzer/internal/models"

// DefaultAssessments returns the builtin question banks. The slice is built
// fresh per call; the engine treats its copy as immutable after startup.
func DefaultAssessments() []models.Assessment {
	return []models.Assessment{
		{
			ID:    "sql",
			Title: "SQL Assessment",
			Questions: []models.Question{
				{
					ID:   1,
					Text: "What does SQL stand for?",
					Options: []string{
						"Structured Query Language",
						"Simple Query Language",
						"Standard Query Language",
						"Sequential Query Language",
					},
					Correct: 0,
				},
				{
					ID:      2,
					Text:    "Which SQL statement is used to extract data from a database?",
					Options: []string{"EXTRACT", "SELECT", "GET", "OPEN"},
					Correct: 1,
				},
				{
					ID:      3,
					Text:    "Which SQL statement is used to update data in a database?",
					Options: []string{"MODIFY", "UPDATE", "SAVE", "CHANGE"},
					Correct: 1,
				},
				{
					ID:      4,
					Text:    "Which SQL statement is used to delete data from a database?",
					Options: []string{"REMOVE", "DELETE", "COLLAPSE", "TRUNCATE"},
					Correct: 1,
				},
				{
					ID:   5,
					Text: "What is the purpose of the WHERE clause in SQL?",
					Options: []string{
						"To specify which columns to select",
						"To filter records based on conditions",
						"To sort the results",
						"To group records",
					},
					Correct: 1,
				},
				{
					ID:      6,
					Text:    "Which keyword is used to sort the result-set in ascending order?",
					Options: []string{"SORT BY", "ORDER BY ASC", "ORDER BY", "SORT ASC"},
					Correct: 2,
				},
				{
					ID:   7,
					Text: "What does JOIN do in SQL?",
					Options: []string{
						"Combines rows from two or more tables",
						"Deletes duplicate rows",
						"Sorts the table",
						"Filters the table",
					},
					Correct: 0,
				},
				{
					ID:      8,
					Text:    "Which SQL function is used to count the number of rows?",
					Options: []string{"COUNT()", "SUM()", "TOTAL()", "NUMBER()"},
					Correct: 0,
				},
				{
					ID:   9,
					Text: "What is the difference between INNER JOIN and LEFT JOIN?",
					Options: []string{
						"INNER JOIN returns all rows from both tables, LEFT JOIN returns only matching rows",
						"INNER JOIN returns only matching rows, LEFT JOIN returns all rows from left table",
						"There is no difference",
						"INNER JOIN is faster than LEFT JOIN",
					},
					Correct: 1,
				},
				{
					ID:      10,
					Text:    "Which SQL statement is used to create a new table?",
					Options: []string{"CREATE TABLE", "NEW TABLE", "ADD TABLE", "MAKE TABLE"},
					Correct: 0,
				},
			},
		},
		{
			ID:    "data_structures",
			Title: "Data Structures Assessment",
			Questions: []models.Question{
				{
					ID:      1,
					Text:    "What is the time complexity of accessing an element in an array by index?",
					Options: []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
					Correct: 0,
				},
				{
					ID:      2,
					Text:    "Which data structure follows LIFO (Last In First Out) principle?",
					Options: []string{"Queue", "Stack", "Array", "Linked List"},
					Correct: 1,
				},
				{
					ID:      3,
					Text:    "What is the time complexity of inserting an element at the beginning of a linked list?",
					Options: []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
					Correct: 0,
				},
				{
					ID:      4,
					Text:    "Which data structure is best for implementing a priority queue?",
					Options: []string{"Array", "Linked List", "Heap", "Stack"},
					Correct: 2,
				},
				{
					ID:      5,
					Text:    "What is the time complexity of binary search on a sorted array?",
					Options: []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
					Correct: 2,
				},
				{
					ID:      6,
					Text:    "Which traversal method visits root, left subtree, then right subtree?",
					Options: []string{"Inorder", "Preorder", "Postorder", "Level order"},
					Correct: 1,
				},
				{
					ID:      7,
					Text:    "What is the worst-case time complexity of quicksort?",
					Options: []string{"O(n log n)", "O(n)", "O(n²)", "O(log n)"},
					Correct: 2,
				},
				{
					ID:      8,
					Text:    "Which data structure uses hash function for storing data?",
					Options: []string{"Array", "Hash Table", "Stack", "Queue"},
					Correct: 1,
				},
				{
					ID:      9,
					Text:    "What is the space complexity of merge sort?",
					Options: []string{"O(1)", "O(n)", "O(log n)", "O(n log n)"},
					Correct: 1,
				},
				{
					ID:      10,
					Text:    "Which data structure is used for implementing breadth-first search?",
					Options: []string{"Stack", "Queue", "Heap", "Array"},
					Correct: 1,
				},
			},
		},
	}
}
